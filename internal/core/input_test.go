package core

import "testing"

func TestInputFrameKeepsPressOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHard)
	f.Set(ActionConfirm)
	f.Set(ActionNone) // ignored

	if len(f.Pressed) != 2 {
		t.Fatalf("expected 2 presses, got %d", len(f.Pressed))
	}
	if f.Pressed[0] != ActionHard || f.Pressed[1] != ActionConfirm {
		t.Errorf("press order not preserved: %v", f.Pressed)
	}
	if !f.Has(ActionConfirm) {
		t.Error("Has(Confirm) should be true")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(Restart) should be false")
	}
}

func TestInputFrameRelease(t *testing.T) {
	f := NewInputFrame()
	f.Release(ActionLeft)

	if !f.HasReleased(ActionLeft) {
		t.Error("HasReleased(Left) should be true")
	}
	if f.Has(ActionLeft) {
		t.Error("a release is not a press")
	}
	if f.Empty() {
		t.Error("frame with a release is not empty")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Release(ActionDown)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionUp) || !clone.HasReleased(ActionDown) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionIsDirection(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionConfirm, false},
		{ActionEasy, false},
		{ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.IsDirection(); got != tc.want {
				t.Errorf("IsDirection() = %v, expected %v", got, tc.want)
			}
		})
	}
}

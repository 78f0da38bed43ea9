package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W - move up
	ActionDown           // Down arrow, S - move down
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionEasy           // E - select EASY on the title screen
	ActionNormal         // N - select NORMAL on the title screen
	ActionHard           // H - select HARD on the title screen
	ActionConfirm        // Enter - start a run from the title screen
	ActionRestart        // R - restart / reset
	ActionQuit           // Esc - leave the program after game over
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionEasy:
		return "Easy"
	case ActionNormal:
		return "Normal"
	case ActionHard:
		return "Hard"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement keys.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}

// InputFrame collects the key edges observed between two simulation ticks.
// Presses keep their arrival order because title-screen commands are order
// sensitive (select a difficulty, then start).
type InputFrame struct {
	Pressed  []Action
	Released []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a press edge for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Pressed = append(f.Pressed, a)
}

// Release records a release edge for this frame.
func (f *InputFrame) Release(a Action) {
	if a == ActionNone {
		return
	}
	f.Released = append(f.Released, a)
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	for _, p := range f.Pressed {
		if p == a {
			return true
		}
	}
	return false
}

// HasReleased returns true if the given action was released this frame.
func (f InputFrame) HasReleased(a Action) bool {
	for _, r := range f.Released {
		if r == a {
			return true
		}
	}
	return false
}

// Empty reports whether the frame carries no edges at all.
func (f InputFrame) Empty() bool {
	return len(f.Pressed) == 0 && len(f.Released) == 0
}

// Clear resets all edges for the next frame.
func (f *InputFrame) Clear() {
	f.Pressed = f.Pressed[:0]
	f.Released = f.Released[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{
		Pressed:  append([]Action(nil), f.Pressed...),
		Released: append([]Action(nil), f.Released...),
	}
}

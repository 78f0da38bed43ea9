package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/coinrush/internal/core"
)

// HoldTracker turns the press-only key events of a terminal into held keys.
//
// A key counts as held for the initial window after its first press. Every
// further press (terminal auto-repeat) renews the hold for the shorter repeat
// window. When a window runs out without a new press the key is reported as
// released.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		until:   make(map[core.Action]time.Time),
	}
}

// Press records a press at now. It returns true for the first press of a
// key that was not held.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	if _, held := h.until[a]; held {
		h.until[a] = later(h.until[a], now.Add(h.repeat))
		return false
	}
	h.until[a] = now.Add(h.initial)
	return true
}

// Held reports whether a key is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, held := h.until[a]
	return held
}

// Expired removes and returns, in action order, the keys whose hold ran out
// at now.
func (h *HoldTracker) Expired(now time.Time) []core.Action {
	var out []core.Action
	for a, until := range h.until {
		if !now.Before(until) {
			out = append(out, a)
		}
	}
	for _, a := range out {
		delete(h.until, a)
	}
	slices.Sort(out)
	return out
}

// Clear forgets every held key.
func (h *HoldTracker) Clear() {
	clear(h.until)
}

func later(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

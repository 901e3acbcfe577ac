package tui

import (
	"time"

	"github.com/vovakirdan/space-dodger/internal/core"
)

// DefaultHoldWindow is how long an action stays held after its last press.
// Terminals wait 250-600 ms before the first auto-repeat, so a key held down
// moves the ship for one window, pauses until repeats start, then moves
// steadily. Longer windows hide the pause but make the ship coast after
// release. Tune with input.hold_ms.
const DefaultHoldWindow = 150 * time.Millisecond

// opposite lists the direction released by a press of each direction.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HoldTracker approximates held keys from press events. Terminals only report
// presses (and auto-repeat), so an action counts as held while its most
// recent press is younger than the window.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records the actions produced by one key press at now.
// A direction releases its opposite. A direction without Run releases Run:
// an unshifted key means shift is up.
func (h *HoldTracker) Press(now time.Time, actions ...core.Action) {
	run, direction := false, false
	for _, a := range actions {
		h.last[a] = now
		if o, ok := opposite[a]; ok {
			delete(h.last, o)
			direction = true
		}
		if a == core.ActionRun {
			run = true
		}
	}
	if direction && !run {
		delete(h.last, core.ActionRun)
	}
}

// Frame returns the actions held at now and forgets expired presses.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, t := range h.last {
		if now.Sub(t) < h.window {
			frame.Set(a)
			continue
		}
		delete(h.last, a)
	}
	return frame
}

// Reset releases every action.
func (h *HoldTracker) Reset() {
	clear(h.last)
}

package tui

import (
	"time"

	"github.com/vovakirdan/brickout/internal/core"
)

// HoldDuration is how long a movement key counts as held after its last
// press event. Terminals send presses and auto-repeats, never releases.
const HoldDuration = 150 * time.Millisecond

// heldKeys emulates key-down state from a stream of press events.
type heldKeys struct {
	ticks     int                 // Ticks a press stays held
	remaining map[core.Action]int // Ticks left per held action
}

// newHeldKeys creates a tracker holding keys for HoldDuration at tickRate.
func newHeldKeys(tickRate int) *heldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(HoldDuration * time.Duration(tickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return &heldKeys{
		ticks:     ticks,
		remaining: make(map[core.Action]int),
	}
}

// Press starts or extends the hold of an action. Pressing one direction
// releases the other.
func (h *heldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}
	h.remaining[a] = h.ticks
}

// Apply sets every held action on frame and counts down one tick.
func (h *heldKeys) Apply(frame core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Release drops every held action.
func (h *heldKeys) Release() {
	clear(h.remaining)
}


package tui

import "github.com/vovakirdan/moonhop/internal/core"

// holdTicks is how long a direction key stays held after its last press.
// Terminals report no key releases, only presses and auto-repeat, so a held
// key is inferred from repeats arriving within this window.
const holdTicks = 9

// heldInput turns discrete key presses into per-tick held actions. Space
// toggles the jump intent: the first press starts charging, the next one
// releases.
type heldInput struct {
	left, right, up int // ticks of hold remaining
	jump            bool
	pending         core.InputFrame // one-shot actions for the next tick
}

func newHeldInput() *heldInput {
	return &heldInput{pending: core.NewInputFrame()}
}

// Press records a key press.
func (h *heldInput) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = holdTicks, 0
	case core.ActionRight:
		h.right, h.left = holdTicks, 0
	case core.ActionUp:
		h.up = holdTicks
	case core.ActionJump:
		h.jump = !h.jump
	case core.ActionPause, core.ActionRestart:
		h.pending.Set(a)
	}
}

// Frame returns the input of the next tick and ages the held keys.
func (h *heldInput) Frame() core.InputFrame {
	f := h.pending.Clone()
	h.pending.Clear()

	if h.left > 0 {
		f.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		f.Set(core.ActionRight)
		h.right--
	}
	if h.up > 0 {
		f.Set(core.ActionUp)
		h.up--
	}
	if h.jump {
		f.Set(core.ActionJump)
	}
	return f
}

// Reset drops every held key.
func (h *heldInput) Reset() {
	*h = heldInput{pending: core.NewInputFrame()}
}

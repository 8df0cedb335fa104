package tui

import "github.com/vovakirdan/tankjump/internal/core"

// heldControls turns terminal key presses into held controls.
//
// Terminals report key presses (with auto-repeat) but no key releases, so a
// direction counts as held until releaseAfter ticks pass without a repeat,
// or until the brake key is pressed. While nothing is held, every tick
// carries a release.
type heldControls struct {
	releaseAfter int
	held         core.Action
	idle         int
	start        bool
}

func newHeldControls(releaseAfter int) *heldControls {
	return &heldControls{releaseAfter: releaseAfter}
}

// Press records a key press.
func (h *heldControls) Press(a core.Action) {
	switch a {
	case core.ActionLeft, core.ActionRight:
		h.held = a
		h.idle = 0
	case core.ActionRelease:
		h.held = core.ActionNone
	case core.ActionStart:
		h.start = true
	}
}

// Frame returns the input for the next tick and ages the held direction.
func (h *heldControls) Frame() core.InputFrame {
	frame := core.NewInputFrame()

	if h.start {
		frame.Set(core.ActionStart)
		h.start = false
	}

	if h.held == core.ActionNone {
		frame.Set(core.ActionRelease)
		return frame
	}

	frame.Set(h.held)
	h.idle++
	if h.idle >= h.releaseAfter {
		h.held = core.ActionNone
	}
	return frame
}

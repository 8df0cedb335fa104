package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tankjump/internal/config"
	"github.com/vovakirdan/tankjump/internal/core"
	"github.com/vovakirdan/tankjump/internal/game"
	"github.com/vovakirdan/tankjump/internal/level"
	"github.com/vovakirdan/tankjump/internal/loop"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		action   core.Action
		wantQuit bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"brake", runeKey('s'), core.ActionRelease, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"q", runeKey('q'), core.ActionNone, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := keys.MapKey(tc.msg)
			if action != tc.action || isQuit != tc.wantQuit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tc.msg.String(), action, isQuit, tc.action, tc.wantQuit)
			}
		})
	}
}

func TestHeldControlsExpire(t *testing.T) {
	h := newHeldControls(3)

	if f := h.Frame(); !f.Has(core.ActionRelease) {
		t.Error("idle controls should report a release")
	}

	h.Press(core.ActionRight)
	for i := range 3 {
		f := h.Frame()
		if !f.Has(core.ActionRight) || f.Has(core.ActionRelease) {
			t.Fatalf("frame %d: expected right held, got %v", i, f.Actions)
		}
	}

	if f := h.Frame(); !f.Has(core.ActionRelease) {
		t.Error("direction should be released after the repeat window")
	}
	if h.held != core.ActionNone {
		t.Errorf("held = %v, expected None", h.held)
	}
}

func TestHeldControlsRepeatKeepsDirection(t *testing.T) {
	h := newHeldControls(2)
	h.Press(core.ActionLeft)

	for i := range 10 {
		// Auto-repeat arrives before the window closes
		h.Press(core.ActionLeft)
		if f := h.Frame(); !f.Has(core.ActionLeft) {
			t.Fatalf("frame %d: left dropped while repeating", i)
		}
	}
}

func TestHeldControlsBrakeAndStart(t *testing.T) {
	h := newHeldControls(10)
	h.Press(core.ActionRight)
	h.Press(core.ActionRelease)

	f := h.Frame()
	if f.Has(core.ActionRight) || !f.Has(core.ActionRelease) {
		t.Errorf("brake should release immediately, got %v", f.Actions)
	}

	h.Press(core.ActionStart)
	if f := h.Frame(); !f.Has(core.ActionStart) {
		t.Error("start should be delivered on the next frame")
	}
	if f := h.Frame(); f.Has(core.ActionStart) {
		t.Error("start is one-shot")
	}
}

func newClassicGame(t *testing.T) (*game.Game, core.Rect) {
	t.Helper()
	lvl := level.Classic(config.Default())
	g, err := game.New(lvl.Entities, config.Default(), nil)
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	return g, lvl.Bounds()
}

func TestDrawSplashScreens(t *testing.T) {
	s := core.NewScreen(60, 20)

	tests := []struct {
		status game.Status
		title  string
	}{
		{game.StatusStartScreen, "Welcome to Tank Jump!"},
		{game.StatusGameOver, "Game Over :("},
		{game.StatusWon, "You Win!"},
	}
	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			Draw(s, game.Snapshot{Status: tc.status.String()}, core.Rect{}, 0)
			if !strings.Contains(s.String(), tc.title) {
				t.Errorf("screen missing %q:\n%s", tc.title, s.String())
			}
		})
	}
}

func TestDrawClassicWorld(t *testing.T) {
	g, world := newClassicGame(t)
	g.Step(core.NewInputFrame(core.ActionStart))

	// 80x25 leaves 24 rows for a 1280x600 world: 16 units per column, 25 per row
	s := core.NewScreen(80, 25)
	Draw(s, g.Snapshot(), world, 0)

	if !strings.Contains(s.Row(0), "TANK JUMP") {
		t.Errorf("HUD row = %q", s.Row(0))
	}
	if got := s.Get(9, 3); got != '▶' {
		t.Errorf("player cell = %q, expected '▶'\n%s", got, s.String())
	}
	if got := s.Get(40, 24); got != '^' {
		t.Errorf("pit cell = %q, expected '^'\n%s", got, s.String())
	}
	if got := s.Get(0, 10); got != '█' {
		t.Errorf("left wall cell = %q, expected '█'", got)
	}
}

func TestModelTicks(t *testing.T) {
	g, world := newClassicGame(t)
	m := NewModel(g, world, config.Default().Controls, loop.NewPacer(24, nil), 80, 25)

	step := func(msg tea.Msg) {
		t.Helper()
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	step(TickMsg(time.Now()))
	if m.Snapshot().Status != game.StatusRunning.String() {
		t.Fatalf("status = %s, expected running", m.Snapshot().Status)
	}

	step(tea.KeyMsg{Type: tea.KeyRight})
	step(TickMsg(time.Now()))
	if vx := m.Snapshot().Player.VX; vx != 10 {
		t.Errorf("VX = %v after one held tick, expected 10", vx)
	}

	if !strings.Contains(m.View(), "TANK JUMP") {
		t.Error("running view should show the HUD")
	}

	updated, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if updated.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

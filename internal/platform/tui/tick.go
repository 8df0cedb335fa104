// Package tui runs Tank Jump in the terminal with Bubble Tea.
// It maps keys to controls, drives the simulation once per tick and draws
// the latest snapshot.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after wait.
// A non-positive wait ticks immediately; an overrun tick is never skipped.
func tickCmd(wait time.Duration) tea.Cmd {
	if wait <= 0 {
		return func() tea.Msg {
			return TickMsg(time.Now())
		}
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Package tui runs a snake session inside a Bubble Tea program: it maps keys
// to turns, drives the tick schedule with tea.Tick and draws the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg fires a scheduled session tick. Game identifies the session that
// armed it, so a tick left over from a finished game is dropped.
type TickMsg struct {
	Game int
	At   time.Time
}

// tickCmd arms a single tick after d. The model re-arms it with the interval
// returned by each tick.
func tickCmd(game int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Game: game, At: t}
	})
}

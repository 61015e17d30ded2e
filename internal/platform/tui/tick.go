// Package tui runs Bowling Solitaire in the terminal: the Bubble Tea session
// with its menus, the game view, key mapping and lipgloss rendering of
// core.Screen buffers.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickInterval is used when a session is built without a tick rate.
const defaultTickInterval = time.Second / 30

// TickMsg is sent to advance the game and the blink phase.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Package tui provides the Bubble Tea presentation of l1t: key mapping,
// board drawing, the play and menu screens, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RoundOverMsg is sent once the end-of-round banner has been shown long enough.
type RoundOverMsg struct{}

// pauseCmd returns a command that sends RoundOverMsg after d.
func pauseCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return RoundOverMsg{} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return RoundOverMsg{}
	})
}

// Package tui provides the Bubble Tea integration for word snake.
// It handles the terminal UI loop, input mapping, and score persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent on every render frame. Logical game ticks are derived
// from the time between frames.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message at the
// specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

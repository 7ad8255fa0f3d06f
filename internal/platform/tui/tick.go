// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick loop that scheduled it, so ticks left over from a finished game
// are dropped instead of doubling the pace of the next one.
type TickMsg struct {
	Loop int64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after the interval
// implied by tickRate. The loop continues only while the receiver re-arms it.
func tickCmd(loop int64, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}

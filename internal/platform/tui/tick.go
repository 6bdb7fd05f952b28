// Package tui drives the snake game with Bubble Tea.
// It owns the terminal loop, input polling, frame timing and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsedMs returns the milliseconds between two ticks, 0 for the first one.
func elapsedMs(prev, now time.Time) float64 {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return float64(now.Sub(prev)) / float64(time.Millisecond)
}

// Package tui runs the game in a terminal through Bubble Tea. It maps mouse
// and key releases to input frames, measures real frame time, and draws the
// cell buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps dt so a stalled terminal does not teleport bubbles.
const maxFrameDelta = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, clamped to
// [0, maxFrameDelta]. The first tick has no predecessor and yields 0.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, input mapping, and level selection.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame. It carries the wall time of the
// tick so the frame can measure how much time has passed.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into elapsed frame durations.
type frameClock struct {
	last time.Time
}

// advance returns the time since the previous tick; the first tick is zero.
func (c *frameClock) advance(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed
}

// Package tui is the Bubble Tea front end: it owns the terminal loop,
// translates keys and mouse presses into input frames, drives the
// simulation tick, and forwards cue events to the audio player.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg requests one simulation step.
type TickMsg time.Time

// tickCmd schedules the next simulation step at the configured rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

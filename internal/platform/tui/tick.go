// Package tui runs the world in a terminal with Bubble Tea. It maps keys to
// actions, drives the world on a fixed tick and paints the board with
// lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Package tui provides the Bubble Tea integration for snake.
// It handles the terminal UI loop, input mapping, the SSH server and the
// leaderboard screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LoopID identifies one of the model's periodic loops.
type LoopID int

const (
	MoveLoop LoopID = iota + 1
	ClockLoop
)

// LoopMsg is sent when a loop period elapses. Gen ties the message to the
// Start call that scheduled it.
type LoopMsg struct {
	ID  LoopID
	Gen uint64
}

// Loop is a cancellable repeating timer built on tea.Tick. Stopping or
// restarting bumps the generation, so ticks already in flight are ignored
// when they arrive.
type Loop struct {
	id       LoopID
	gen      uint64
	interval time.Duration
	running  bool
}

// NewLoop creates a stopped loop.
func NewLoop(id LoopID, interval time.Duration) Loop {
	return Loop{id: id, interval: interval}
}

// Start (re)starts the loop and returns the command for its first tick.
func (l *Loop) Start() tea.Cmd {
	l.gen++
	l.running = true
	return l.Next()
}

// Stop cancels the loop. Pending ticks become stale.
func (l *Loop) Stop() {
	l.gen++
	l.running = false
}

// Owns reports whether msg is a live tick of this loop.
func (l *Loop) Owns(msg LoopMsg) bool {
	return l.running && msg.ID == l.id && msg.Gen == l.gen
}

// Next schedules the following tick. Call it after handling an owned tick.
func (l *Loop) Next() tea.Cmd {
	id, gen := l.id, l.gen
	return tea.Tick(l.interval, func(time.Time) tea.Msg {
		return LoopMsg{ID: id, Gen: gen}
	})
}

// SetInterval changes the period from the next scheduled tick on.
func (l *Loop) SetInterval(d time.Duration) {
	if d > 0 {
		l.interval = d
	}
}

// Interval returns the current period.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Running reports whether the loop is active.
func (l *Loop) Running() bool {
	return l.running
}

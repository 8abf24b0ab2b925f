package snake

import (
	"fmt"
	"time"
)

// Clock is the elapsed-time counter shown next to the score. It advances once
// per clock interval while running and is independent of the move rate.
type Clock struct {
	seconds int
	running bool
}

// Start resumes counting.
func (c *Clock) Start() {
	c.running = true
}

// Stop freezes the counter.
func (c *Clock) Stop() {
	c.running = false
}

// Reset stops the clock and sets it back to zero.
func (c *Clock) Reset() {
	c.seconds = 0
	c.running = false
}

// Tick adds one second if the clock is running and reports whether it did.
func (c *Clock) Tick() bool {
	if !c.running {
		return false
	}
	c.seconds++
	return true
}

// Running reports whether the clock is counting.
func (c *Clock) Running() bool {
	return c.running
}

// Elapsed returns the counted time.
func (c *Clock) Elapsed() time.Duration {
	return time.Duration(c.seconds) * time.Second
}

// String formats the counter as mm:ss. Minutes keep growing past 59.
func (c *Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.seconds/60, c.seconds%60)
}

package bubbles

import "time"

// Combo counts rapid manual pops. Pops closer together than the window
// extend the streak; a slower pop restarts it at one.
type Combo struct {
	Window    time.Duration
	Threshold int

	count   int
	last    time.Duration
	started bool
}

// Register records a manual pop at now and reports whether this pop
// crossed the threshold from below.
func (c *Combo) Register(now time.Duration) bool {
	crossed := false
	if c.started && now-c.last <= c.Window {
		next := c.count + 1
		crossed = c.count < c.Threshold && next >= c.Threshold
		c.count = next
	} else {
		c.count = 1
		crossed = c.Threshold <= 1
	}
	c.last = now
	c.started = true
	return crossed
}

// Count returns the current streak length.
func (c *Combo) Count() int {
	return c.count
}

// Reset clears the streak.
func (c *Combo) Reset() {
	c.count = 0
	c.started = false
}

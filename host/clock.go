// Package host connects tweens to a host application. It measures frame
// deltas, drives schedulers and provides default schedulers.
package host

import (
	"time"

	"github.com/cloudflare/golibs/ewma"
)

// DefaultMaxDelta is the default limit for a single measured delta.
const DefaultMaxDelta = 250 * time.Millisecond

// Clock measures the time between ticks.
type Clock struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// MaxDelta limits a single delta so that a stalled host does not skip
	// whole animations. Zero disables the limit.
	MaxDelta time.Duration

	halfLife time.Duration
	smooth   *ewma.Ewma
	last     time.Time
}

// NewClock creates a new clock. If the half-life is positive, the measured
// deltas are smoothed using an exponentially weighted moving average.
func NewClock(halfLife time.Duration) *Clock {
	c := &Clock{
		Now:      time.Now,
		MaxDelta: DefaultMaxDelta,
		halfLife: halfLife,
	}
	c.Reset()

	return c
}

// Tick returns the time in seconds since the last tick. The first tick after
// creation or a reset returns zero.
func (c *Clock) Tick() float64 {
	// get time
	now := c.Now()

	// handle first tick
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	// get delta
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		delta = 0
	}
	if c.MaxDelta > 0 && delta > c.MaxDelta {
		delta = c.MaxDelta
	}

	// get seconds
	dt := delta.Seconds()

	// smooth delta
	if c.smooth != nil {
		dt = c.smooth.Update(dt, now)
	}

	return dt
}

// Reset forgets the last tick and the smoothing history.
func (c *Clock) Reset() {
	c.last = time.Time{}
	c.smooth = nil
	if c.halfLife > 0 {
		c.smooth = ewma.NewEwma(c.halfLife)
	}
}

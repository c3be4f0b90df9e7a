package host

import (
	"sync"
	"time"

	"github.com/petermattis/goid"

	"github.com/256dpi/max-easing/scheduler"
)

// Driver advances a scheduler with the deltas measured by a clock.
type Driver struct {
	Clock     *Clock
	Scheduler *scheduler.Scheduler
}

// NewDriver creates a driver with a new clock and scheduler.
func NewDriver(halfLife time.Duration) *Driver {
	return &Driver{
		Clock:     NewClock(halfLife),
		Scheduler: scheduler.New(),
	}
}

// Tick measures the delta since the last tick, advances the scheduler and
// returns the delta.
func (d *Driver) Tick() float64 {
	dt := d.Clock.Tick()
	d.Scheduler.Tick(dt)
	return dt
}

// Advance advances the scheduler by the provided delta. The clock is not
// consulted.
func (d *Driver) Advance(dt float64) {
	d.Scheduler.Tick(dt)
}

var defaults sync.Map

// Default returns the default scheduler of the calling goroutine. It is
// created on first use. The scheduler itself is not safe for concurrent use
// and must only be ticked from the goroutine that owns it.
func Default() *scheduler.Scheduler {
	id := goid.Get()

	// check existing
	if s, ok := defaults.Load(id); ok {
		return s.(*scheduler.Scheduler)
	}

	// create scheduler
	s := scheduler.New()
	defaults.Store(id, s)

	return s
}

// Release drops the default scheduler of the calling goroutine.
func Release() {
	defaults.Delete(goid.Get())
}

package tween

import (
	"math"

	"github.com/256dpi/max-easing/curve"
)

// DefaultDuration is the duration used when none is specified.
const DefaultDuration = 1.0

// Options configure a single interpolation.
type Options struct {
	// The duration in seconds.
	Duration float64

	// The easing function.
	Curve curve.Kind

	// The delay in seconds before the interpolation begins.
	Delay float64
}

// DefaultOptions returns options with a duration of one second, the linear
// curve and no delay.
func DefaultOptions() Options {
	return Options{
		Duration: DefaultDuration,
		Curve:    curve.Linear,
	}
}

// Normalize returns a copy of the options with invalid values repaired:
// negative, infinite or NaN durations and delays become zero and unknown
// curves become linear. Invalid options are never reported as errors so that
// a malformed request cannot break a frame loop.
func (o Options) Normalize() Options {
	o.Duration = sanitize(o.Duration)
	o.Delay = sanitize(o.Delay)
	if !o.Curve.Valid() {
		o.Curve = curve.Linear
	}
	return o
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

package curve

import "math"

// epsilon guards the exact endpoint of the elastic functions.
const epsilon = math.SmallestNonzeroFloat32

const (
	backOvershoot   = 1.70158
	backInOutFactor = 1.525
	bounceFactor    = 7.5625
	bounceDivisor   = 2.75
)

// LinearFunc eases without acceleration.
func LinearFunc(t, b, c, d float64) float64 {
	return c*t/d + b
}

// InQuadFunc accelerates from zero velocity.
func InQuadFunc(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

// OutQuadFunc decelerates to zero velocity.
func OutQuadFunc(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

// InOutQuadFunc accelerates until halfway, then decelerates.
func InOutQuadFunc(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}

	t--
	return -c/2*(t*(t-2)-1) + b
}

// InCubicFunc accelerates from zero velocity.
func InCubicFunc(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t + b
}

// OutCubicFunc decelerates to zero velocity.
func OutCubicFunc(t, b, c, d float64) float64 {
	t /= d
	t--
	return c*(t*t*t+1) + b
}

// InOutCubicFunc accelerates until halfway, then decelerates.
func InOutCubicFunc(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}

	t -= 2
	return c/2*(t*t*t+2) + b
}

// InQuartFunc accelerates from zero velocity.
func InQuartFunc(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t + b
}

// OutQuartFunc decelerates to zero velocity.
func OutQuartFunc(t, b, c, d float64) float64 {
	t /= d
	t--
	return -c*(t*t*t*t-1) + b
}

// InOutQuartFunc accelerates until halfway, then decelerates.
func InOutQuartFunc(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t + b
	}

	t -= 2
	return -c/2*(t*t*t*t-2) + b
}

// InQuintFunc accelerates from zero velocity.
func InQuintFunc(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t*t + b
}

// OutQuintFunc decelerates to zero velocity.
func OutQuintFunc(t, b, c, d float64) float64 {
	t /= d
	t--
	return c*(t*t*t*t*t+1) + b
}

// InOutQuintFunc accelerates until halfway, then decelerates.
func InOutQuintFunc(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t*t + b
	}

	t -= 2
	return c/2*(t*t*t*t*t+2) + b
}

// InSineFunc accelerates along a sine curve.
func InSineFunc(t, b, c, d float64) float64 {
	if t >= d {
		return b + c
	}
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

// OutSineFunc decelerates along a sine curve.
func OutSineFunc(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

// InOutSineFunc accelerates until halfway, then decelerates.
func InOutSineFunc(t, b, c, d float64) float64 {
	return -c/2*(math.Cos(math.Pi*t/d)-1) + b
}

// InExpoFunc accelerates exponentially.
func InExpoFunc(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	return c*math.Pow(2, 10*(t/d-1)) + b
}

// OutExpoFunc decelerates exponentially.
func OutExpoFunc(t, b, c, d float64) float64 {
	if t >= d {
		return b + c
	}
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

// InOutExpoFunc accelerates until halfway, then decelerates.
func InOutExpoFunc(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	if t >= d {
		return b + c
	}

	t /= d / 2
	if t < 1 {
		return c/2*math.Pow(2, 10*(t-1)) + b
	}

	t--
	return c/2*(-math.Pow(2, -10*t)+2) + b
}

// InCircFunc accelerates along a circular arc.
func InCircFunc(t, b, c, d float64) float64 {
	t /= d
	return -c*(root(1-t*t)-1) + b
}

// OutCircFunc decelerates along a circular arc.
func OutCircFunc(t, b, c, d float64) float64 {
	t /= d
	t--
	return c*root(1-t*t) + b
}

// InOutCircFunc accelerates until halfway, then decelerates.
func InOutCircFunc(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return -c/2*(root(1-t*t)-1) + b
	}

	t -= 2
	return c/2*(root(1-t*t)+1) + b
}

// InElasticFunc winds up like a spring before moving towards the target.
// The curve overshoots below the begin value.
func InElasticFunc(t, b, c, d float64) float64 {
	t /= d
	if math.Abs(t-1) < epsilon {
		return b + c
	}

	p := d * .3
	s := p / 4

	t--
	return -(c * math.Pow(2, 10*t) * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
}

// OutElasticFunc springs past the target and settles on it.
func OutElasticFunc(t, b, c, d float64) float64 {
	t /= d
	if math.Abs(t-1) < epsilon {
		return b + c
	}

	p := d * .3
	s := p / 4

	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

// InOutElasticFunc combines the in and out elastic functions.
func InOutElasticFunc(t, b, c, d float64) float64 {
	t /= d / 2
	if math.Abs(t-2) < epsilon {
		return b + c
	}

	p := d * (.3 * 1.5)
	s := p / 4

	if t < 1 {
		t--
		return -.5*(c*math.Pow(2, 10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)) + b
	}

	t--
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)*.5 + c + b
}

// InBackFunc pulls back slightly before moving towards the target.
func InBackFunc(t, b, c, d float64) float64 {
	s := backOvershoot
	t /= d
	return c*t*t*((s+1)*t-s) + b
}

// OutBackFunc overshoots the target slightly before settling.
func OutBackFunc(t, b, c, d float64) float64 {
	s := backOvershoot
	t /= d
	t--
	return c*(t*t*((s+1)*t+s)+1) + b
}

// InOutBackFunc combines the in and out back functions.
func InOutBackFunc(t, b, c, d float64) float64 {
	s := backOvershoot * backInOutFactor
	t /= d / 2
	if t < 1 {
		return c/2*(t*t*((s+1)*t-s)) + b
	}

	t -= 2
	return c/2*(t*t*((s+1)*t+s)+2) + b
}

// InBounceFunc bounces off the begin value with increasing height.
func InBounceFunc(t, b, c, d float64) float64 {
	return c - OutBounceFunc(d-t, 0, c, d) + b
}

// OutBounceFunc bounces on the target with decreasing height.
func OutBounceFunc(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < 1/bounceDivisor:
		return c*(bounceFactor*t*t) + b
	case t < 2/bounceDivisor:
		t -= 1.5 / bounceDivisor
		return c*(bounceFactor*t*t+.75) + b
	case t < 2.5/bounceDivisor:
		t -= 2.25 / bounceDivisor
		return c*(bounceFactor*t*t+.9375) + b
	default:
		t -= 2.625 / bounceDivisor
		return c*(bounceFactor*t*t+.984375) + b
	}
}

// InOutBounceFunc combines the in and out bounce functions.
func InOutBounceFunc(t, b, c, d float64) float64 {
	if t < d/2 {
		return InBounceFunc(t*2, 0, c, d)*.5 + b
	}
	return OutBounceFunc(t*2-d, 0, c, d)*.5 + c*.5 + b
}

// root is a square root that treats tiny negative rounding errors as zero.
func root(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

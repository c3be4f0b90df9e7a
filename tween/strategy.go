package tween

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/256dpi/max-easing/curve"
)

// Strategy computes values of a specific type. Every component of a value is
// interpolated independently.
type Strategy[T any] interface {
	// Change returns the difference between the two values.
	Change(from, to T) T

	// Value returns the value at the provided time for the begin value, the
	// change and the duration using the easing function.
	Value(time float64, begin, change T, duration float64, fn curve.Func) T
}

// ease evaluates the function and yields the end value for empty durations
// and at the end of the duration.
func ease(fn curve.Func, t, b, c, d float64) float64 {
	if d <= 0 || t >= d {
		return b + c
	}
	return fn(t, b, c, d)
}

// Scalar interpolates float64 values.
type Scalar struct{}

// Change implements the Strategy interface.
func (Scalar) Change(from, to float64) float64 {
	return to - from
}

// Value implements the Strategy interface.
func (Scalar) Value(time float64, begin, change float64, duration float64, fn curve.Func) float64 {
	return ease(fn, time, begin, change, duration)
}

// Vec2 interpolates two-dimensional vectors.
type Vec2 struct{}

// Change implements the Strategy interface.
func (Vec2) Change(from, to mgl64.Vec2) mgl64.Vec2 {
	return to.Sub(from)
}

// Value implements the Strategy interface.
func (Vec2) Value(time float64, begin, change mgl64.Vec2, duration float64, fn curve.Func) mgl64.Vec2 {
	return mgl64.Vec2{
		ease(fn, time, begin.X(), change.X(), duration),
		ease(fn, time, begin.Y(), change.Y(), duration),
	}
}

// Vec3 interpolates three-dimensional vectors.
type Vec3 struct{}

// Change implements the Strategy interface.
func (Vec3) Change(from, to mgl64.Vec3) mgl64.Vec3 {
	return to.Sub(from)
}

// Value implements the Strategy interface.
func (Vec3) Value(time float64, begin, change mgl64.Vec3, duration float64, fn curve.Func) mgl64.Vec3 {
	return mgl64.Vec3{
		ease(fn, time, begin.X(), change.X(), duration),
		ease(fn, time, begin.Y(), change.Y(), duration),
		ease(fn, time, begin.Z(), change.Z(), duration),
	}
}

// Color interpolates RGBA colors stored as four-component vectors. If Clamp is
// set, every channel is limited to the range [0, 1] which cuts off the
// overshoot of elastic and back curves.
type Color struct {
	Clamp bool
}

// Change implements the Strategy interface.
func (Color) Change(from, to mgl64.Vec4) mgl64.Vec4 {
	return to.Sub(from)
}

// Value implements the Strategy interface.
func (s Color) Value(time float64, begin, change mgl64.Vec4, duration float64, fn curve.Func) mgl64.Vec4 {
	var value mgl64.Vec4
	for i := range value {
		value[i] = ease(fn, time, begin[i], change[i], duration)
		if s.Clamp {
			value[i] = mgl64.Clamp(value[i], 0, 1)
		}
	}

	return value
}

// Rotation interpolates rotations along the shortest arc. The change is the
// relative rotation from the begin to the target rotation.
type Rotation struct{}

// Change implements the Strategy interface.
func (Rotation) Change(from, to mgl64.Quat) mgl64.Quat {
	rel := from.Normalize().Inverse().Mul(to.Normalize())
	if rel.W < 0 {
		rel = rel.Scale(-1)
	}
	return rel
}

// Value implements the Strategy interface.
func (Rotation) Value(time float64, begin, change mgl64.Quat, duration float64, fn curve.Func) mgl64.Quat {
	amount := ease(fn, time, 0, 1, duration)
	return begin.Normalize().Mul(mgl64.QuatSlerp(mgl64.QuatIdent(), change, amount))
}

// NewFloat creates an idle float tween.
func NewFloat() *Tween[float64] {
	return New[float64](Scalar{})
}

// NewVec2 creates an idle two-dimensional vector tween.
func NewVec2() *Tween[mgl64.Vec2] {
	return New[mgl64.Vec2](Vec2{})
}

// NewVec3 creates an idle three-dimensional vector tween.
func NewVec3() *Tween[mgl64.Vec3] {
	return New[mgl64.Vec3](Vec3{})
}

// NewColor creates an idle color tween that clamps channels to [0, 1].
func NewColor() *Tween[mgl64.Vec4] {
	return New[mgl64.Vec4](Color{Clamp: true})
}

// NewRotation creates an idle rotation tween.
func NewRotation() *Tween[mgl64.Quat] {
	return New[mgl64.Quat](Rotation{})
}

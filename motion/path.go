package motion

import "github.com/go-gl/mathgl/mgl64"

// Linear returns the point on the straight line from start to end at the
// provided progress. Progress outside [0, 1] extrapolates along the line, which
// keeps the overshoot of curves like OutBack or OutElastic. A progress of
// exactly one yields the end.
func Linear(start, end mgl64.Vec3, progress float64) mgl64.Vec3 {
	if progress == 1 {
		return end
	}
	return start.Add(end.Sub(start).Mul(progress))
}

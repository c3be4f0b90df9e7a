package motion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/256dpi/max-easing/curve"
	"github.com/256dpi/max-easing/scheduler"
	"github.com/256dpi/max-easing/tween"
)

func TestMoveTo(t *testing.T) {
	var applied []mgl64.Vec3
	m := New(func(pos mgl64.Vec3) {
		applied = append(applied, pos)
	})

	m.MoveTo(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 20, 30}, tween.Options{Duration: 2})
	assert.True(t, m.Active())
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, m.Position())

	m.Tick(1)
	assert.Equal(t, mgl64.Vec3{5, 10, 15}, m.Position())

	m.Tick(1)
	assert.Equal(t, mgl64.Vec3{10, 20, 30}, m.Position())
	assert.True(t, m.Done())

	// no more updates once done
	m.Tick(1)
	assert.Equal(t, []mgl64.Vec3{{5, 10, 15}, {10, 20, 30}}, applied)
}

func TestMoveToDelay(t *testing.T) {
	var applied int
	m := New(func(mgl64.Vec3) {
		applied++
	})

	m.MoveTo(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{3, 3, 3}, tween.Options{Duration: 1, Delay: 1})

	m.Tick(0.5)
	assert.Equal(t, 0, applied)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, m.Position())

	m.Tick(1)
	assert.Equal(t, 1, applied)
	assert.Equal(t, mgl64.Vec3{2, 2, 2}, m.Position())
}

func TestFollow(t *testing.T) {
	target := mgl64.Vec3{10, 0, 0}
	var calls int

	m := New(nil)
	m.Follow(mgl64.Vec3{}, func() mgl64.Vec3 {
		calls++
		return target
	}, tween.Options{Duration: 2})
	assert.Equal(t, target, m.End())

	m.Tick(1)
	assert.Equal(t, mgl64.Vec3{5, 0, 0}, m.Position())

	// the target moves
	target = mgl64.Vec3{20, 0, 0}
	m.Tick(0.5)
	assert.Equal(t, mgl64.Vec3{15, 0, 0}, m.Position())

	m.Tick(0.5)
	assert.Equal(t, mgl64.Vec3{20, 0, 0}, m.Position())
	assert.True(t, m.Done())

	// the target is released
	before := calls
	target = mgl64.Vec3{100, 0, 0}
	m.Tick(1)
	assert.Equal(t, before, calls)
	assert.Equal(t, mgl64.Vec3{20, 0, 0}, m.Position())
}

func TestOvershoot(t *testing.T) {
	m := New(nil)
	m.MoveTo(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, tween.Options{Duration: 1, Curve: curve.OutBack})

	m.Tick(0.7)
	assert.Greater(t, m.Position().X(), 1.0)

	m.Tick(0.3)
	assert.InDelta(t, 1.0, m.Position().X(), 1e-9)
}

func TestLinear(t *testing.T) {
	a := mgl64.Vec3{0.1, 0.2, 0.3}
	b := mgl64.Vec3{0.7, -0.9, 3.3}

	assert.Equal(t, a, Linear(a, b, 0))
	assert.Equal(t, b, Linear(a, b, 1))
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, Linear(mgl64.Vec3{}, mgl64.Vec3{2, 4, 6}, 0.5))
	assert.True(t, mgl64.Vec3{2.4, 4.8, 7.2}.ApproxEqual(Linear(mgl64.Vec3{}, mgl64.Vec3{2, 4, 6}, 1.2)))
	assert.True(t, mgl64.Vec3{-0.4, -0.8, -1.2}.ApproxEqual(Linear(mgl64.Vec3{}, mgl64.Vec3{2, 4, 6}, -0.2)))
}

func TestMoveToExactEnd(t *testing.T) {
	m := New(nil)
	m.MoveTo(mgl64.Vec3{0.1, 0.2, 0.3}, mgl64.Vec3{0.7, -0.9, 3.3}, tween.Options{
		Duration: 0.2,
		Curve:    curve.OutElastic,
		Delay:    0.1,
	})

	m.Tick(1000)
	assert.True(t, m.Done())
	assert.Equal(t, mgl64.Vec3{0.7, -0.9, 3.3}, m.Position())
}

func TestCustomLerp(t *testing.T) {
	m := New(nil)
	m.Lerp = func(start, end mgl64.Vec3, progress float64) mgl64.Vec3 {
		return mgl64.Vec3{progress, progress, progress}
	}

	m.MoveTo(mgl64.Vec3{}, mgl64.Vec3{5, 5, 5}, tween.Options{Duration: 4})
	m.Tick(1)
	assert.Equal(t, mgl64.Vec3{0.25, 0.25, 0.25}, m.Position())
}

func TestStop(t *testing.T) {
	m := New(nil)
	m.Follow(mgl64.Vec3{}, func() mgl64.Vec3 {
		return mgl64.Vec3{4, 0, 0}
	}, tween.Options{Duration: 4})

	m.Tick(1)
	assert.True(t, m.Stop())
	assert.False(t, m.Stop())
	assert.True(t, m.Done())
	assert.Equal(t, tween.Stopped, m.Progress().State())

	m.Tick(1)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, m.Position())
}

func TestOnFinished(t *testing.T) {
	m := New(nil)

	var positions []mgl64.Vec3
	cancel := m.OnFinished(func() {
		positions = append(positions, m.Position())
	})

	m.MoveTo(mgl64.Vec3{}, mgl64.Vec3{2, 2, 2}, tween.Options{Duration: 1})
	m.Tick(2)
	assert.Equal(t, []mgl64.Vec3{{2, 2, 2}}, positions)

	cancel()
	m.MoveTo(mgl64.Vec3{}, mgl64.Vec3{2, 2, 2}, tween.Options{Duration: 1})
	m.Tick(2)
	assert.Len(t, positions, 1)
}

func TestScheduler(t *testing.T) {
	s := scheduler.New()

	a := New(nil)
	a.MoveTo(mgl64.Vec3{}, mgl64.Vec3{4, 0, 0}, tween.Options{Duration: 2})
	b := New(nil)
	b.MoveTo(mgl64.Vec3{}, mgl64.Vec3{0, 4, 0}, tween.Options{Duration: 1})
	b.OnFinished(func() {
		s.Unregister(b)
	})

	s.Register(a)
	s.Register(b)

	s.Tick(1)
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, a.Position())
	assert.Equal(t, mgl64.Vec3{0, 4, 0}, b.Position())
	assert.Equal(t, 1, s.Len())

	s.Tick(1)
	assert.Equal(t, mgl64.Vec3{4, 0, 0}, a.Position())
	assert.Equal(t, 1, s.Prune())
}

// Package motion moves a position towards a fixed or moving target.
package motion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/256dpi/max-easing/tween"
)

// Mover eases a position from a start towards a target by driving a progress
// tween from zero to one. The target may be tracked while the movement is in
// progress.
type Mover struct {
	// Lerp computes the position for the start, end and eased progress.
	// Defaults to Linear.
	Lerp func(start, end mgl64.Vec3, progress float64) mgl64.Vec3

	// Apply is called with every newly computed position.
	Apply func(mgl64.Vec3)

	progress *tween.Tween[float64]
	start    mgl64.Vec3
	end      mgl64.Vec3
	target   func() mgl64.Vec3
	position mgl64.Vec3
	finished []*func()
}

// New creates a new mover that reports positions to the provided function.
// The function may be nil.
func New(apply func(mgl64.Vec3)) *Mover {
	return &Mover{
		Lerp:     Linear,
		Apply:    apply,
		progress: tween.NewFloat(),
	}
}

// MoveTo starts a movement from the provided position to the target position.
func (m *Mover) MoveTo(from, to mgl64.Vec3, opts tween.Options) {
	m.start = from
	m.end = to
	m.target = nil
	m.position = from
	m.progress.StartWith(0, 1, opts)
}

// Follow starts a movement from the provided position to the position returned
// by the target function. The function is queried on every tick until the
// movement ends.
func (m *Mover) Follow(from mgl64.Vec3, target func() mgl64.Vec3, opts tween.Options) {
	m.start = from
	m.end = from
	if target != nil {
		m.end = target()
	}
	m.target = target
	m.position = from
	m.progress.StartWith(0, 1, opts)
}

// Tick advances the movement by dt and applies the new position.
func (m *Mover) Tick(dt float64) {
	// check progress
	if !m.progress.Active() {
		return
	}

	// advance progress
	m.progress.Advance(dt)

	// skip delay
	if m.progress.State() == tween.Delaying {
		return
	}

	m.apply()

	// notify
	if m.progress.State() == tween.Finished {
		for _, fn := range m.finished {
			(*fn)()
		}
	}
}

// Stop cancels the movement and keeps the current position.
func (m *Mover) Stop() bool {
	if !m.progress.Stop() {
		return false
	}

	// release target
	m.target = nil

	return true
}

// Done returns whether the movement has finished or has been stopped.
func (m *Mover) Done() bool {
	return m.progress.Done()
}

// Active returns whether the movement is delaying or running.
func (m *Mover) Active() bool {
	return m.progress.Active()
}

// Position returns the current position.
func (m *Mover) Position() mgl64.Vec3 {
	return m.position
}

// End returns the current end position of the movement.
func (m *Mover) End() mgl64.Vec3 {
	return m.end
}

// Progress returns the underlying progress tween.
func (m *Mover) Progress() *tween.Tween[float64] {
	return m.progress
}

// OnFinished registers a callback that is invoked when a movement finishes.
// The final position has already been applied when it is invoked. The
// returned function removes the callback.
func (m *Mover) OnFinished(fn func()) func() {
	ref := &fn
	m.finished = append(m.finished, ref)

	return func() {
		for i, r := range m.finished {
			if r == ref {
				m.finished = append(m.finished[:i:i], m.finished[i+1:]...)
				return
			}
		}
	}
}

func (m *Mover) apply() {
	// get end position
	if m.target != nil {
		m.end = m.target()
	}

	// compute position
	m.position = m.Lerp(m.start, m.end, m.progress.Value())
	if m.Apply != nil {
		m.Apply(m.position)
	}

	// release target once done
	if !m.progress.Active() {
		m.target = nil
	}
}

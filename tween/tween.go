// Package tween implements a generic interpolation state machine that is
// advanced by an externally supplied delta time.
//
// A Tween never reads a clock and never mutates anything outside itself. The
// host calls Advance once per frame and reads back the current value:
//
//	t := tween.NewFloat()
//	t.Start(0, 10, 2, curve.OutCubic, 0)
//	for !t.Done() {
//		apply(t.Advance(dt))
//	}
//
// Hooks are invoked synchronously during the call that triggers them. A hook
// must not call Start, Advance, SetTime or Stop on the tween that fired it; the
// behaviour of such re-entrant calls is undefined.
package tween

import (
	"math"

	"github.com/256dpi/max-easing/curve"
)

// State describes the lifecycle of a tween.
type State int

// The available states.
const (
	Idle State = iota
	Delaying
	Running
	Finished
	Stopped
)

// String implements the fmt.Stringer interface.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Delaying:
		return "delaying"
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Tween interpolates a value of type T from a begin to a target value.
type Tween[T any] struct {
	strategy Strategy[T]

	begin    T
	target   T
	change   T
	duration float64
	delay    float64
	elapsed  float64
	kind     curve.Kind
	fn       curve.Func
	state    State
	current  T

	started      hooks[func()]
	valueChanged hooks[func(T)]
	finished     hooks[func()]
	stopped      hooks[func()]
}

// New creates an idle tween that computes values with the provided strategy.
func New[T any](strategy Strategy[T]) *Tween[T] {
	return &Tween[T]{
		strategy: strategy,
		kind:     curve.Linear,
		fn:       curve.LinearFunc,
	}
}

// Start begins a new interpolation from begin to target. Invalid durations and
// delays are treated as zero. Any previous interpolation is discarded without
// notification.
func (t *Tween[T]) Start(begin, target T, duration float64, kind curve.Kind, delay float64) {
	t.StartWith(begin, target, Options{
		Duration: duration,
		Curve:    kind,
		Delay:    delay,
	})
}

// StartWith is like Start but takes the configuration as options.
func (t *Tween[T]) StartWith(begin, target T, opts Options) {
	// repair options
	opts = opts.Normalize()

	// reset state
	t.begin = begin
	t.target = target
	t.change = t.strategy.Change(begin, target)
	t.duration = opts.Duration
	t.delay = opts.Delay
	t.elapsed = 0
	t.kind = opts.Curve
	t.fn = curve.Resolve(opts.Curve)

	// seed value
	t.current = t.compute(0)

	// set state
	if t.delay > 0 {
		t.state = Delaying
	} else {
		t.state = Running
	}

	// notify
	t.emitStarted()
	t.emitValueChanged()
}

// Advance moves the tween forward by dt seconds and returns the current value.
// Idle, finished and stopped tweens are not changed. A zero, negative or NaN
// dt is ignored.
func (t *Tween[T]) Advance(dt float64) T {
	// check state
	if !t.Active() {
		return t.current
	}

	// ignore empty steps
	if math.IsNaN(dt) || dt <= 0 {
		return t.current
	}

	// advance clock, overshoot of the delay is carried into the running time
	t.elapsed = math.Min(t.elapsed+dt, t.delay+t.duration)

	// handle delay
	if t.elapsed < t.delay {
		return t.current
	}

	t.state = Running
	t.update()

	return t.current
}

// Tick advances the tween by dt. It allows a tween to be registered with a
// scheduler.
func (t *Tween[T]) Tick(dt float64) {
	t.Advance(dt)
}

// SetTime seeks the tween to the provided total time, including the delay. The
// time is clamped to the range [0, delay + duration]. Seeking to the end
// finishes the tween. Idle, finished and stopped tweens ignore the call.
func (t *Tween[T]) SetTime(time float64) {
	// check state
	if !t.Active() {
		return
	}

	// clamp time
	if math.IsNaN(time) || time < 0 {
		time = 0
	}
	t.elapsed = math.Min(time, t.delay+t.duration)

	// handle delay
	if t.elapsed < t.delay {
		t.state = Delaying
		t.current = t.compute(0)
		t.emitValueChanged()
		return
	}

	t.state = Running
	t.update()
}

// Stop cancels a delaying or running tween. The current value is kept. It
// returns whether the tween has been stopped.
func (t *Tween[T]) Stop() bool {
	// check state
	if !t.Active() {
		return false
	}

	// set state
	t.state = Stopped

	// notify
	for _, h := range t.stopped.list() {
		h.fn()
	}

	return true
}

// OnStarted registers a callback that is invoked when the tween is started.
// The returned function removes the callback.
func (t *Tween[T]) OnStarted(fn func()) func() {
	return t.started.add(fn)
}

// OnValueChanged registers a callback that is invoked with every newly
// computed value. The returned function removes the callback.
func (t *Tween[T]) OnValueChanged(fn func(T)) func() {
	return t.valueChanged.add(fn)
}

// OnFinished registers a callback that is invoked once the tween reaches its
// end. The value has already been updated when it is invoked. The returned
// function removes the callback.
func (t *Tween[T]) OnFinished(fn func()) func() {
	return t.finished.add(fn)
}

// OnStopped registers a callback that is invoked when the tween is stopped.
// The returned function removes the callback.
func (t *Tween[T]) OnStopped(fn func()) func() {
	return t.stopped.add(fn)
}

// State returns the current state.
func (t *Tween[T]) State() State {
	return t.state
}

// Active returns whether the tween is delaying or running.
func (t *Tween[T]) Active() bool {
	return t.state == Delaying || t.state == Running
}

// Done returns whether the tween has finished or has been stopped.
func (t *Tween[T]) Done() bool {
	return t.state == Finished || t.state == Stopped
}

// Value returns the current value.
func (t *Tween[T]) Value() T {
	return t.current
}

// Begin returns the begin value.
func (t *Tween[T]) Begin() T {
	return t.begin
}

// Target returns the target value.
func (t *Tween[T]) Target() T {
	return t.target
}

// Duration returns the duration in seconds.
func (t *Tween[T]) Duration() float64 {
	return t.duration
}

// Delay returns the configured delay in seconds.
func (t *Tween[T]) Delay() float64 {
	return t.delay
}

// Curve returns the easing function kind.
func (t *Tween[T]) Curve() curve.Kind {
	return t.kind
}

// Elapsed returns the total elapsed time including the delay. It never exceeds
// delay + duration.
func (t *Tween[T]) Elapsed() float64 {
	return t.elapsed
}

// RunningTime returns the elapsed time after the delay. It is clamped to the
// range [0, duration].
func (t *Tween[T]) RunningTime() float64 {
	if t.ended() {
		return t.duration
	}
	return math.Min(math.Max(0, t.elapsed-t.delay), t.duration)
}

// Progress returns the linear progress in the range [0, 1].
func (t *Tween[T]) Progress() float64 {
	if t.duration <= 0 {
		if t.state == Finished {
			return 1
		}
		return 0
	}
	return t.RunningTime() / t.duration
}

func (t *Tween[T]) compute(time float64) T {
	return t.strategy.Value(time, t.begin, t.change, t.duration, t.fn)
}

// ended returns whether the elapsed time has reached delay + duration.
func (t *Tween[T]) ended() bool {
	return t.elapsed >= t.delay+t.duration
}

func (t *Tween[T]) update() {
	// recompute value
	t.current = t.compute(t.RunningTime())
	t.emitValueChanged()

	// check end
	if !t.ended() {
		return
	}

	// finish
	t.state = Finished
	for _, h := range t.finished.list() {
		h.fn()
	}
}

func (t *Tween[T]) emitStarted() {
	for _, h := range t.started.list() {
		h.fn()
	}
}

func (t *Tween[T]) emitValueChanged() {
	for _, h := range t.valueChanged.list() {
		h.fn(t.current)
	}
}

// Package scheduler advances a set of independent tickers once per frame.
package scheduler

import "reflect"

// Ticker is a unit that can be advanced by a delta time. Tickers are compared
// by identity and should therefore be pointers. Tickers whose values are not
// comparable are rejected.
type Ticker interface {
	// Tick advances the unit by dt seconds.
	Tick(dt float64)

	// Done returns whether the unit has finished or has been stopped.
	Done() bool
}

// Scheduler manages a set of tickers. Finished tickers are never removed
// implicitly, callers either unregister them or call Prune.
//
// Tickers may register and unregister tickers, including themselves, from
// within their hooks while the scheduler ticks. A ticker that is unregistered
// before it has been visited is not advanced, and a ticker registered during
// a tick is first advanced with the next tick.
//
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	list    []Ticker
	index   map[Ticker]uint64
	gen     uint64
	ticking bool
	buf     []Ticker
}

// New creates and returns a new scheduler.
func New() *Scheduler {
	return &Scheduler{
		index: map[Ticker]uint64{},
	}
}

// Register adds the ticker. It returns false if the ticker is nil, not
// comparable or already registered.
func (s *Scheduler) Register(t Ticker) bool {
	// check ticker
	if !valid(t) {
		return false
	}

	// check existence
	if _, ok := s.index[t]; ok {
		return false
	}

	// add ticker
	s.list = append(s.list, t)
	s.index[t] = s.gen

	return true
}

// Unregister removes the ticker. It returns false if the ticker has not been
// registered.
func (s *Scheduler) Unregister(t Ticker) bool {
	// check existence
	if !valid(t) {
		return false
	}
	if _, ok := s.index[t]; !ok {
		return false
	}

	// remove ticker
	delete(s.index, t)
	for i, item := range s.list {
		if item == t {
			s.list = append(s.list[:i], s.list[i+1:]...)
			break
		}
	}

	return true
}

// Contains returns whether the ticker is registered.
func (s *Scheduler) Contains(t Ticker) bool {
	if !valid(t) {
		return false
	}
	_, ok := s.index[t]
	return ok
}

// Len returns the number of registered tickers.
func (s *Scheduler) Len() int {
	return len(s.list)
}

// Tick advances all registered tickers by dt. The order in which tickers are
// advanced is unspecified. Nested calls from within a hook are ignored.
func (s *Scheduler) Tick(dt float64) {
	// check nesting
	if s.ticking {
		return
	}

	// begin generation
	s.gen++
	s.ticking = true

	// take snapshot
	snapshot := append(s.buf[:0], s.list...)

	for _, t := range snapshot {
		// skip removed tickers and tickers added during this tick
		gen, ok := s.index[t]
		if !ok || gen == s.gen {
			continue
		}

		t.Tick(dt)
	}

	// release references
	for i := range snapshot {
		snapshot[i] = nil
	}
	s.buf = snapshot[:0]

	s.ticking = false
}

// Prune unregisters all tickers that are done and returns their count.
func (s *Scheduler) Prune() int {
	var n int
	for _, t := range append([]Ticker(nil), s.list...) {
		if t.Done() && s.Unregister(t) {
			n++
		}
	}

	return n
}

// Clear unregisters all tickers.
func (s *Scheduler) Clear() {
	s.list = nil
	s.index = map[Ticker]uint64{}
}

func valid(t Ticker) bool {
	return t != nil && reflect.ValueOf(t).Comparable()
}

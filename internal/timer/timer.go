// Package timer provides a scene-owned clock with repeating events. It is
// advanced by the simulation, never by wall time, so runs are reproducible.
package timer

import (
	"time"
)

// Event is a scheduled repeating callback.
type Event struct {
	period  time.Duration
	next    time.Duration
	fn      func()
	stopped bool
	fired   int
}

// Period returns the time between firings.
func (e *Event) Period() time.Duration {
	return e.period
}

// Fired returns how many times the event has run.
func (e *Event) Fired() int {
	return e.fired
}

// Stop prevents the event from firing again.
func (e *Event) Stop() {
	e.stopped = true
}

// Stopped reports whether the event was stopped.
func (e *Event) Stopped() bool {
	return e.stopped
}

// Timer is a queue of events driven by Advance. It is meant to be used from
// the simulation goroutine only.
type Timer struct {
	now     time.Duration
	minStep time.Duration
	events  []*Event
	firing  bool
}

// New creates a timer. minStep is the shortest allowed period, usually one
// simulation tick, so a loop never fires more than once per Advance.
func New(minStep time.Duration) *Timer {
	return &Timer{minStep: minStep}
}

// Now returns the simulated time elapsed since the timer was created.
func (t *Timer) Now() time.Duration {
	return t.now
}

// Len returns the number of live events.
func (t *Timer) Len() int {
	n := 0
	for _, e := range t.events {
		if !e.stopped {
			n++
		}
	}
	return n
}

// Loop schedules fn to run every period, first after one period.
// Periods shorter than the timer's minimum step are raised to it.
func (t *Timer) Loop(period time.Duration, fn func()) *Event {
	if period < t.minStep {
		period = t.minStep
	}
	e := &Event{
		period: period,
		next:   t.now + period,
		fn:     fn,
	}
	t.events = append(t.events, e)
	return e
}

// Advance moves the clock forward by dt and runs every due event once, in
// scheduling order. An event that fell more than one period behind skips
// the missed firings instead of bursting.
func (t *Timer) Advance(dt time.Duration) {
	if t.firing {
		return
	}
	t.firing = true
	defer func() { t.firing = false }()

	t.now += dt

	// Callbacks may add or stop events, so fire from a snapshot.
	pending := append([]*Event(nil), t.events...)
	for _, e := range pending {
		if e.stopped || t.now < e.next {
			continue
		}
		e.fired++
		e.fn()
		e.next += e.period
		if e.next <= t.now {
			e.next = t.now + e.period
		}
	}

	live := t.events[:0]
	for _, e := range t.events {
		if !e.stopped {
			live = append(live, e)
		}
	}
	t.events = live
}

// Stop cancels every event. The timer can still be advanced.
func (t *Timer) Stop() {
	for _, e := range t.events {
		e.stopped = true
	}
	t.events = t.events[:0]
}

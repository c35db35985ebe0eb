package timer

import (
	"testing"
	"time"
)

const tick = time.Second / 60

func TestLoopFiresEveryPeriod(t *testing.T) {
	tm := New(tick)
	calls := 0
	ev := tm.Loop(100*time.Millisecond, func() { calls++ })

	for i := 0; i < 60; i++ { // one simulated second
		tm.Advance(tick)
	}

	// 1000ms / 100ms; ticks are 16.67ms so firings land on tick boundaries.
	if calls < 9 || calls > 10 {
		t.Errorf("calls = %d, expected 9 or 10", calls)
	}
	if ev.Fired() != calls {
		t.Errorf("Fired() = %d, expected %d", ev.Fired(), calls)
	}
	if tm.Now() != 60*tick {
		t.Errorf("Now() = %v, expected %v", tm.Now(), 60*tick)
	}
}

func TestLoopDoesNotFireEarly(t *testing.T) {
	tm := New(tick)
	calls := 0
	tm.Loop(time.Second, func() { calls++ })

	tm.Advance(999 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("fired after 999ms of a 1s period")
	}
	tm.Advance(time.Millisecond)
	if calls != 1 {
		t.Fatalf("calls = %d, expected 1 at exactly one period", calls)
	}
}

func TestZeroPeriodIsClampedToOneTick(t *testing.T) {
	tm := New(tick)
	calls := 0
	ev := tm.Loop(0, func() { calls++ })

	if ev.Period() != tick {
		t.Errorf("Period() = %v, expected %v", ev.Period(), tick)
	}

	for i := 0; i < 10; i++ {
		tm.Advance(tick)
	}
	if calls != 10 {
		t.Errorf("calls = %d, expected one per tick", calls)
	}
}

func TestAdvanceFiresAtMostOncePerCall(t *testing.T) {
	tm := New(tick)
	calls := 0
	tm.Loop(20*time.Millisecond, func() { calls++ })

	tm.Advance(time.Second)
	if calls != 1 {
		t.Errorf("calls = %d, expected 1 for a single large advance", calls)
	}

	tm.Advance(10 * time.Millisecond)
	if calls != 1 {
		t.Errorf("missed firings should be skipped, calls = %d", calls)
	}
	tm.Advance(10 * time.Millisecond)
	if calls != 2 {
		t.Errorf("calls = %d, expected 2 one period after catching up", calls)
	}
}

func TestStop(t *testing.T) {
	tm := New(tick)
	a, b := 0, 0
	evA := tm.Loop(tick, func() { a++ })
	tm.Loop(tick, func() { b++ })

	tm.Advance(tick)
	evA.Stop()
	tm.Advance(tick)

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, expected 1 and 2", a, b)
	}
	if !evA.Stopped() || tm.Len() != 1 {
		t.Errorf("stopped event should be dropped, Len() = %d", tm.Len())
	}

	tm.Stop()
	tm.Advance(tick)
	if b != 2 || tm.Len() != 0 {
		t.Errorf("Stop should silence every event, b=%d Len=%d", b, tm.Len())
	}
}

func TestCallbacksMayScheduleAndStop(t *testing.T) {
	tm := New(tick)
	var spawned *Event
	inner := 0

	outer := tm.Loop(tick, func() {
		if spawned == nil {
			spawned = tm.Loop(tick, func() { inner++ })
		}
	})

	tm.Advance(tick) // outer fires and schedules inner; inner is not due yet
	if inner != 0 {
		t.Fatalf("event scheduled during Advance fired in the same call")
	}
	tm.Advance(tick)
	if inner != 1 {
		t.Fatalf("inner = %d, expected 1", inner)
	}

	outer.Stop()
	if tm.Len() != 1 {
		t.Errorf("Len() = %d, expected only the inner event", tm.Len())
	}
}

func TestAdvanceIsNotReentrant(t *testing.T) {
	tm := New(tick)
	calls := 0
	tm.Loop(tick, func() {
		calls++
		tm.Advance(tick)
	})

	tm.Advance(tick)
	if calls != 1 {
		t.Errorf("calls = %d, a nested Advance must be ignored", calls)
	}
	if tm.Now() != tick {
		t.Errorf("Now() = %v, nested Advance must not move the clock", tm.Now())
	}
}

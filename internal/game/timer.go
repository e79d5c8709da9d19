package game

// Timer is a cancellable scheduled callback tied to the session lifetime.
// Timers are advanced by the simulation step, so callbacks run on the same
// goroutine as the step and may only clear flags they themselves set.
type Timer struct {
	remaining float64
	fn        func()
	cancelled bool
}

// Cancel prevents the callback from ever firing.
func (t *Timer) Cancel() {
	t.cancelled = true
}

// timerSet holds the session's pending timers.
type timerSet struct {
	active []*Timer
}

func newTimerSet() *timerSet {
	return &timerSet{}
}

// After schedules fn to run once seconds of simulation time have elapsed.
func (ts *timerSet) After(seconds float64, fn func()) *Timer {
	t := &Timer{remaining: seconds, fn: fn}
	ts.active = append(ts.active, t)
	return t
}

// Advance elapses time on all pending timers, firing the due ones and
// dropping fired and cancelled entries. Callbacks may schedule new timers;
// those are not advanced until the next call.
func (ts *timerSet) Advance(seconds float64) {
	due := ts.active
	ts.active = nil
	var kept []*Timer
	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.remaining -= seconds
		if t.remaining <= 0 {
			t.fn()
			continue
		}
		kept = append(kept, t)
	}
	ts.active = append(kept, ts.active...)
}

// CancelAll drops every pending timer without firing it.
func (ts *timerSet) CancelAll() {
	for _, t := range ts.active {
		t.cancelled = true
	}
	ts.active = ts.active[:0]
}

// Pending returns the number of timers still scheduled.
func (ts *timerSet) Pending() int {
	n := 0
	for _, t := range ts.active {
		if !t.cancelled {
			n++
		}
	}
	return n
}

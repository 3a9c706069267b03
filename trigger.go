package sapling

// TriggerConfig configures a Trigger. The zero value of each optional field
// selects its documented default; defaults are resolved once at
// construction, not on every call.
type TriggerConfig struct {
	// Count is the number of Fire calls between hits once the trigger is
	// past its first interval.
	Count int
	// InitialCount is the length of the first interval after the first hit.
	// Zero means "same as Count".
	InitialCount int
	// Once makes the trigger fire at most one time across its lifetime.
	Once bool
	// StartValue offsets the first interval. With the default of zero the
	// very first Fire call hits immediately.
	StartValue int
}

// Trigger is a stateful counter whose Fire method returns true once every
// Count calls. It is the standard way to run periodic logic ("every 30
// ticks, spawn an enemy") inside a Handler's Update.
//
// Count values of zero or below are not guarded against: the countdown
// check then passes on every call and the trigger fires every time.
type Trigger struct {
	count        int
	initialCount int
	once         bool
	startValue   int

	calls     int
	firstCall bool
}

// NewTrigger returns a Trigger that fires on the first call and every
// count calls after that.
func NewTrigger(count int) *Trigger {
	return NewTriggerConfig(TriggerConfig{Count: count})
}

// NewTriggerConfig returns a Trigger with full configuration.
func NewTriggerConfig(cfg TriggerConfig) *Trigger {
	initial := cfg.InitialCount
	if initial == 0 {
		initial = cfg.Count
	}
	return &Trigger{
		count:        cfg.Count,
		initialCount: initial,
		once:         cfg.Once,
		startValue:   cfg.StartValue,
		calls:        cfg.StartValue,
		firstCall:    true,
	}
}

// Fire counts down one call and reports whether the trigger hit. A fresh
// trigger hits on calls 1, InitialCount+1, InitialCount+Count+1, and so on.
// With Once set, only the first hit reports true; every later call is false
// regardless of counting.
func (t *Trigger) Fire() bool {
	if !t.firstCall && t.once {
		return false
	}
	t.calls--
	if t.calls <= 0 {
		if t.firstCall {
			t.calls = t.initialCount
		} else {
			t.calls = t.count
		}
		t.firstCall = false
		return true
	}
	return false
}

// Reset reinstates the pre-first-call state with the configured start value.
// A reset trigger reproduces the same hit sequence as a fresh one.
func (t *Trigger) Reset() {
	t.calls = t.startValue
	t.firstCall = true
}

// ResetTo is Reset with a different starting offset for the next interval.
func (t *Trigger) ResetTo(start int) {
	t.calls = start
	t.firstCall = true
}

// FireOrReset calls Fire when cond is true; otherwise it resets the trigger
// and returns false. Convenient for "only count while a condition holds",
// e.g. a key that must be held down continuously.
func (t *Trigger) FireOrReset(cond bool) bool {
	if cond {
		return t.Fire()
	}
	t.Reset()
	return false
}

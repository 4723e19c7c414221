package system

import "math"

// Timer accumulates milliseconds and fires when Duration is reached.
// A repeating timer keeps the remainder and fires again; a one-shot timer
// stays finished.
type Timer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool

	finished bool
	times    int
}

func NewTimer(durationMS float64, repeating bool) *Timer {
	return &Timer{Duration: durationMS, Repeating: repeating}
}

// Tick advances the timer by ms.
func (t *Timer) Tick(ms float64) {
	t.times = 0
	if t.finished && !t.Repeating {
		return
	}
	t.Elapsed += ms
	t.finished = t.Elapsed >= t.Duration
	if !t.finished {
		return
	}
	if !t.Repeating {
		t.times = 1
		t.Elapsed = t.Duration
		return
	}
	if t.Duration <= 0 {
		t.times = 1
		t.Elapsed = 0
		return
	}
	t.times = int(t.Elapsed / t.Duration)
	t.Elapsed = math.Mod(t.Elapsed, t.Duration)
}

// Finished reports whether the last Tick reached the duration. For one-shot
// timers it stays true.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the last Tick crossed the duration.
func (t *Timer) JustFinished() bool {
	return t.times > 0
}

// TimesFinished is how many times the last Tick crossed the duration.
func (t *Timer) TimesFinished() int {
	return t.times
}

func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.times = 0
}

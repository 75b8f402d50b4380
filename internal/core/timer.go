package core

import "time"

// Interval paces simulation steps at an adjustable delay, the way a
// reschedule-after-each-step timeout would.
type Interval struct {
	delay time.Duration
	last  time.Time
}

// NewInterval constructs an Interval firing every delay.
func NewInterval(delay time.Duration) *Interval {
	iv := &Interval{}
	iv.SetDelay(delay)
	return iv
}

// Delay returns the current delay between steps.
func (iv *Interval) Delay() time.Duration { return iv.delay }

// SetDelay changes the delay. Non-positive values fall back to 100ms.
func (iv *Interval) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	iv.delay = delay
}

// Restart begins a fresh wait from now.
func (iv *Interval) Restart(now time.Time) { iv.last = now }

// Due reports whether a full delay has elapsed since the last step and, if
// so, starts the next wait from now. Missed steps are not made up.
func (iv *Interval) Due(now time.Time) bool {
	if iv.last.IsZero() {
		iv.last = now
		return false
	}
	if now.Sub(iv.last) < iv.delay {
		return false
	}
	iv.last = now
	return true
}

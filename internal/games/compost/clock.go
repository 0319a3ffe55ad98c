package compost

import "time"

// Clock turns host frame timestamps into simulation steps. Steps are
// clamped so a stalled or backgrounded host does not produce a large jump.
type Clock struct {
	last    time.Time
	maxStep time.Duration
}

// NewClock creates a clock with the given maximum step.
func NewClock(maxStep time.Duration) *Clock {
	return &Clock{maxStep: maxStep}
}

// Elapsed returns the clamped time since the previous call.
// The first call after creation or Reset returns zero.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	return c.Clamp(dt)
}

// Clamp limits dt to [0, maxStep].
func (c *Clock) Clamp(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if dt > c.maxStep {
		return c.maxStep
	}
	return dt
}

// Reset forgets the previous timestamp.
func (c *Clock) Reset() {
	c.last = time.Time{}
}

// Throttle gates how often observable state is updated, independent of how
// often the simulation steps.
type Throttle struct {
	interval time.Duration
	acc      time.Duration
}

// NewThrottle creates a throttle that fires at most once per interval.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Advance accumulates dt and reports whether a flush is due.
func (t *Throttle) Advance(dt time.Duration) bool {
	t.acc += dt
	if t.acc >= t.interval {
		t.acc = 0
		return true
	}
	return false
}

// Deltas are score and life changes not yet applied to observable state.
type Deltas struct {
	Score int
	Lives int
}

// Empty reports whether there is nothing to apply.
func (d Deltas) Empty() bool {
	return d.Score == 0 && d.Lives == 0
}

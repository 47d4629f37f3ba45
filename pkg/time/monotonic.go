package time

import "time"

// clock measures time relative to a fixed start instant
// time.Since reads the monotonic reading carried by time.Now, so lease
// deadlines never move when the wall clock is adjusted
type Clock struct {
	startTime time.Time
}

func NewClock() *Clock {
	return &Clock{
		startTime: time.Now(),
	}
}

// duration since the clock started, never decreases
func (c *Clock) Elapsed() time.Duration {
	return time.Since(c.startTime)
}

// deadline for a lease granted now with the given ttl
func (c *Clock) ExpiresAt(ttl time.Duration) time.Duration {
	return c.Elapsed() + ttl
}

// time left until the given deadline, zero once it has passed
func (c *Clock) Remaining(deadline time.Duration) time.Duration {
	if left := deadline - c.Elapsed(); left > 0 {
		return left
	}
	return 0
}

package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Elapsed returns how long a game has been running. A zero end means the
// game is still in progress and the clock's current time is used instead.
func Elapsed(c Clock, start, end time.Time) time.Duration {
	if start.IsZero() {
		return 0
	}
	if end.IsZero() {
		end = c.Now()
	}
	if end.Before(start) {
		return 0
	}
	return end.Sub(start)
}

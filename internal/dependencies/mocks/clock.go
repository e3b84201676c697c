package mocks

import (
	"time"

	"github.com/mcoot/puzzlebox/internal/dependencies/clock"
)

// MockClock is a Clock frozen at CurrentTime until a test moves it
type MockClock struct {
	CurrentTime time.Time
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward and returns the new time, which is
// handy when asserting on UpdatedAt or FinishedAt
func (c *MockClock) Advance(d time.Duration) time.Time {
	c.CurrentTime = c.CurrentTime.Add(d)
	return c.CurrentTime
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}

package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/puzzlebox/internal/dependencies/clock"
	"github.com/mcoot/puzzlebox/internal/dependencies/mocks"
)

func TestElapsed(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clk := mocks.NewMockClock(start.Add(90 * time.Second))

	assert.Equal(t, 90*time.Second, clock.Elapsed(clk, start, time.Time{}))
	assert.Equal(t, 30*time.Second, clock.Elapsed(clk, start, start.Add(30*time.Second)))
	assert.Equal(t, time.Duration(0), clock.Elapsed(clk, time.Time{}, time.Time{}))
	assert.Equal(t, time.Duration(0), clock.Elapsed(clk, start, start.Add(-time.Second)))
}

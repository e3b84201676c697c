package factory

import (
	"time"

	"github.com/mcoot/puzzlebox/internal/dependencies/mocks"
	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/services/auth"
	"github.com/mcoot/puzzlebox/internal/storage/memory"
	"github.com/mcoot/puzzlebox/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// With nothing queued, MockRandom returns 0 for every draw.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, mockRandom, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestPhrases loads a small catalog for testing
func (t *TestApp) LoadTestPhrases() error {
	return t.PhraseService.LoadPhrases([]model.Phrase{
		{Text: "AB BA", Author: "Palindromist"},
		{Text: "Go, go!", Author: "Gopher"},
		{Text: "Simplicity is prerequisite for reliability.", Author: "Edsger W. Dijkstra"},
	})
}

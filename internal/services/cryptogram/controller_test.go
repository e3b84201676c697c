package cryptogram

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/puzzlebox/internal/dependencies/mocks"
	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/services/phrases"
	"github.com/mcoot/puzzlebox/internal/storage/memory"
	"github.com/mcoot/puzzlebox/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	phrases    *phrases.Service
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.phrases = phrases.New(s.storage, testutil.NopLogger())
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.phrases, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()

	// With an empty random queue every cipher is the rotation A->B, B->C, ...
	s.Require().NoError(s.phrases.LoadPhrases([]model.Phrase{
		{Text: "AB BA", Author: "Palindromist"},
		{Text: "Go, go!", Author: "Gopher"},
	}))
}

// Catalog tests

func (s *ControllerSuite) TestCatalogDefaultsToFirstPuzzle() {
	catalog, err := s.controller.Catalog(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(Catalog{Count: 2, Current: 0}, catalog)
}

func (s *ControllerSuite) TestCatalogNotLoaded() {
	empty := phrases.New(s.storage, testutil.NopLogger())
	controller := NewController(s.storage, empty, s.clock, s.random, testutil.NopLogger())

	_, err := controller.Catalog(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrCatalogNotLoaded)
}

func (s *ControllerSuite) TestSelectPuzzle() {
	puzzle, err := s.controller.SelectPuzzle(s.ctx, "player-1", 1)
	s.Require().NoError(err)
	s.Equal(1, puzzle.Index)

	current, err := s.controller.CurrentIndex(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(1, current)

	other, _ := s.controller.CurrentIndex(s.ctx, "player-2")
	s.Equal(0, other)
}

func (s *ControllerSuite) TestSelectPuzzleOutOfRange() {
	_, err := s.controller.SelectPuzzle(s.ctx, "player-1", 5)
	s.ErrorIs(err, model.ErrPhraseNotFound)

	current, _ := s.controller.CurrentIndex(s.ctx, "player-1")
	s.Equal(0, current)
}

// GetPuzzle tests

func (s *ControllerSuite) TestGetPuzzleCreatesAndPersists() {
	puzzle, err := s.controller.GetPuzzle(s.ctx, "player-1", 0)
	s.Require().NoError(err)

	s.Equal(model.PlayerID("player-1"), puzzle.PlayerID)
	s.Equal('B', puzzle.Cipher.Get('A'))
	s.Equal(s.clock.Now(), puzzle.UpdatedAt)

	record, err := s.storage.GetPuzzleRecord(s.ctx, "player-1", 0)
	s.Require().NoError(err)
	s.Equal(puzzle.Goal, record.Goal)
}

func (s *ControllerSuite) TestGetPuzzleIsStableAcrossCalls() {
	first, err := s.controller.GetPuzzle(s.ctx, "player-1", 0)
	s.Require().NoError(err)
	draws := len(s.random.IntnCalls)

	s.random.QueueIntn(3, 1, 4, 1, 5, 9, 2, 6)
	second, err := s.controller.GetPuzzle(s.ctx, "player-1", 0)
	s.Require().NoError(err)

	s.Equal(first.Cipher, second.Cipher)
	s.Len(s.random.IntnCalls, draws, "no cipher generated on the second call")
}

func (s *ControllerSuite) TestGetPuzzleReplacesStaleRecord() {
	var stale model.PuzzleRecord
	stale.Goal.Set('Q', 'Z')
	_ = s.storage.SavePuzzleRecord(s.ctx, "player-1", 0, &stale)

	puzzle, err := s.controller.GetPuzzle(s.ctx, "player-1", 0)
	s.Require().NoError(err)
	s.Equal(2, puzzle.Goal.Defined().Len())

	record, _ := s.storage.GetPuzzleRecord(s.ctx, "player-1", 0)
	s.Equal(puzzle.Goal, record.Goal)
}

// EnterLetter tests

func (s *ControllerSuite) TestEnterLetterPersistsProgress() {
	s.clock.Advance(time.Minute)

	puzzle, outcome, err := s.controller.EnterLetter(s.ctx, "player-1", 0, 'B', 'a', 0)
	s.Require().NoError(err)
	s.True(outcome.Applied)
	s.Equal(1, outcome.NextFocus)
	s.Equal('A', puzzle.SolveAttempt.Get('B'))

	record, _ := s.storage.GetPuzzleRecord(s.ctx, "player-1", 0)
	s.Equal('A', record.SolveAttempt.Get('B'))
	s.Equal(s.clock.Now(), record.UpdatedAt)
}

func (s *ControllerSuite) TestEnterLetterSolvesPuzzle() {
	_, _, err := s.controller.EnterLetter(s.ctx, "player-1", 0, 'B', 'A', 0)
	s.Require().NoError(err)

	puzzle, outcome, err := s.controller.EnterLetter(s.ctx, "player-1", 0, 'C', 'B', 1)
	s.Require().NoError(err)
	s.True(outcome.Solved)
	s.True(puzzle.IsSolved())

	record, _ := s.storage.GetPuzzleRecord(s.ctx, "player-1", 0)
	s.True(record.Finished)

	_, outcome, err = s.controller.EnterLetter(s.ctx, "player-1", 0, 'C', 'X', 1)
	s.Require().NoError(err)
	s.False(outcome.Applied)
}

func (s *ControllerSuite) TestEnterLetterIgnoredIsNotSaved() {
	_, err := s.controller.GetPuzzle(s.ctx, "player-1", 0)
	s.Require().NoError(err)
	created := s.clock.Now()
	s.clock.Advance(time.Hour)

	_, outcome, err := s.controller.EnterLetter(s.ctx, "player-1", 0, 'Z', 'A', 0)
	s.Require().NoError(err)
	s.False(outcome.Applied)

	record, _ := s.storage.GetPuzzleRecord(s.ctx, "player-1", 0)
	s.Equal(created, record.UpdatedAt)
}

// Hint tests

func (s *ControllerSuite) TestHintLocksLetter() {
	puzzle, outcome, err := s.controller.Hint(s.ctx, "player-1", 1)
	s.Require().NoError(err)
	s.True(outcome.Applied)
	s.True(puzzle.Hints.Has(outcome.Letter))

	_, letterOutcome, err := s.controller.EnterLetter(s.ctx, "player-1", 1, outcome.Letter, 'Q', 0)
	s.Require().NoError(err)
	s.False(letterOutcome.Applied)
}

func (s *ControllerSuite) TestHintUntilSolved() {
	// "Go, go!" uses two letters
	_, _, _ = s.controller.Hint(s.ctx, "player-1", 1)
	puzzle, outcome, err := s.controller.Hint(s.ctx, "player-1", 1)
	s.Require().NoError(err)
	s.True(outcome.Solved)
	s.True(puzzle.IsSolved())

	_, outcome, err = s.controller.Hint(s.ctx, "player-1", 1)
	s.Require().NoError(err)
	s.False(outcome.Applied)
}

// ResetPuzzle tests

func (s *ControllerSuite) TestResetPuzzleStartsOver() {
	original, _, err := s.controller.EnterLetter(s.ctx, "player-1", 0, 'B', 'A', 0)
	s.Require().NoError(err)

	s.random.QueueIntn(5)
	reset, err := s.controller.ResetPuzzle(s.ctx, "player-1", 0)
	s.Require().NoError(err)

	s.NotEqual(original.Cipher, reset.Cipher)
	s.Equal(model.LetterMap{}, reset.SolveAttempt)
	s.Zero(reset.Hints)

	record, _ := s.storage.GetPuzzleRecord(s.ctx, "player-1", 0)
	s.Equal(reset.Cipher, record.Cipher)
}

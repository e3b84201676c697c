package minefield

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/puzzlebox/internal/dependencies/mocks"
	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/storage/memory"
	"github.com/mcoot/puzzlebox/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
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
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

// newThreeByOne creates a 3x1 board with a single mine in the left cell
func (s *ControllerSuite) newThreeByOne() *model.Minefield {
	s.random.QueueIntn(0)
	s.random.QueueString("FIELD0000001")
	field, err := s.controller.NewGame(s.ctx, "player-1", 3, 1, 1)
	s.Require().NoError(err)
	return field
}

// NewGame tests

func (s *ControllerSuite) TestNewGameStoresBoard() {
	field := s.newThreeByOne()

	s.Equal(model.MinefieldID("FIELD0000001"), field.ID)
	s.Equal(model.PlayerID("player-1"), field.PlayerID)
	s.Equal(s.clock.Now(), field.CreatedAt)
	s.True(field.Cells[0].HasMine)

	stored, err := s.storage.GetMinefield(s.ctx, field.ID)
	s.Require().NoError(err)
	s.Equal(field.Cells, stored.Cells)
}

func (s *ControllerSuite) TestNewGameInvalidConfiguration() {
	_, err := s.controller.NewGame(s.ctx, "player-1", 2, 2, 4)
	s.ErrorIs(err, model.ErrInvalidConfiguration)
}

func (s *ControllerSuite) TestNewPresetGame() {
	s.random.QueueIntn(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	s.random.QueueString("EASYGAME0001")

	field, err := s.controller.NewPresetGame(s.ctx, "player-1", "easy")
	s.Require().NoError(err)
	s.Equal(10, field.Width)
	s.Equal(10, field.Height)
	s.Equal(10, field.MineCount)
}

func (s *ControllerSuite) TestNewPresetGameUnknown() {
	_, err := s.controller.NewPresetGame(s.ctx, "player-1", "nightmare")
	s.ErrorIs(err, model.ErrUnknownPreset)
}

// GetGame tests

func (s *ControllerSuite) TestGetGameChecksOwner() {
	field := s.newThreeByOne()

	_, err := s.controller.GetGame(s.ctx, field.ID, "player-2")
	s.ErrorIs(err, model.ErrNotOwner)

	_, err = s.controller.GetGame(s.ctx, "missing", "player-1")
	s.ErrorIs(err, model.ErrMinefieldNotFound)
}

// Reveal tests

func (s *ControllerSuite) TestRevealPersistsAndFinishes() {
	field := s.newThreeByOne()
	finishedAt := s.clock.Advance(90 * time.Second)

	next, outcome, err := s.controller.Reveal(s.ctx, field.ID, "player-1", 2)
	s.Require().NoError(err)

	s.True(outcome.Applied)
	s.Equal([]int{2, 1}, outcome.Opened)
	s.Equal(model.MinefieldWon, next.Status)
	s.Equal(finishedAt, next.FinishedAt)

	stored, _ := s.storage.GetMinefield(s.ctx, field.ID)
	s.Equal(model.MinefieldWon, stored.Status)
	s.Equal(finishedAt, stored.UpdatedAt)
}

func (s *ControllerSuite) TestRevealMineLoses() {
	field := s.newThreeByOne()

	next, _, err := s.controller.Reveal(s.ctx, field.ID, "player-1", 0)
	s.Require().NoError(err)
	s.Equal(model.MinefieldLost, next.Status)
	s.False(next.FinishedAt.IsZero())
}

func (s *ControllerSuite) TestIgnoredActionIsNotSaved() {
	field := s.newThreeByOne()
	s.clock.Advance(time.Minute)

	next, outcome, err := s.controller.Reveal(s.ctx, field.ID, "player-1", 99)
	s.Require().NoError(err)
	s.False(outcome.Applied)
	s.Equal(field.UpdatedAt, next.UpdatedAt)

	stored, _ := s.storage.GetMinefield(s.ctx, field.ID)
	s.Equal(field.UpdatedAt, stored.UpdatedAt)
}

func (s *ControllerSuite) TestRevealRequiresOwner() {
	field := s.newThreeByOne()

	_, _, err := s.controller.Reveal(s.ctx, field.ID, "player-2", 2)
	s.ErrorIs(err, model.ErrNotOwner)
}

// ToggleFlag tests

func (s *ControllerSuite) TestToggleFlagBlocksReveal() {
	field := s.newThreeByOne()

	flagged, outcome, err := s.controller.ToggleFlag(s.ctx, field.ID, "player-1", 0)
	s.Require().NoError(err)
	s.True(outcome.Applied)
	s.True(flagged.Cells[0].Flagged)
	s.Equal(model.MinefieldPlaying, flagged.Status)

	_, outcome, err = s.controller.Reveal(s.ctx, field.ID, "player-1", 0)
	s.Require().NoError(err)
	s.False(outcome.Applied)
}

package tictactoe

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

func (s *ControllerSuite) newGame() *model.TicTacToe {
	s.random.QueueString("TTT000000001")
	game, err := s.controller.NewGame(s.ctx, "player-1", 3)
	s.Require().NoError(err)
	return game
}

func (s *ControllerSuite) TestNewGame() {
	game := s.newGame()
	s.Equal(model.TicTacToeID("TTT000000001"), game.ID)
	s.Equal(3, game.Width)

	stored, err := s.storage.GetTicTacToe(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), stored.PlayerID)
}

func (s *ControllerSuite) TestNewGameInvalidWidth() {
	_, err := s.controller.NewGame(s.ctx, "player-1", 12)
	s.ErrorIs(err, model.ErrInvalidConfiguration)
}

func (s *ControllerSuite) TestPlayPersists() {
	game := s.newGame()
	later := s.clock.Advance(time.Second)

	next, outcome, err := s.controller.Play(s.ctx, game.ID, "player-1", 4)
	s.Require().NoError(err)
	s.True(outcome.Applied)
	s.Equal(later, next.UpdatedAt)

	stored, _ := s.storage.GetTicTacToe(s.ctx, game.ID)
	s.Equal(model.MarkX, stored.Current().Squares[4])
}

func (s *ControllerSuite) TestPlayOccupiedIsIgnored() {
	game := s.newGame()
	_, _, _ = s.controller.Play(s.ctx, game.ID, "player-1", 4)

	_, outcome, err := s.controller.Play(s.ctx, game.ID, "player-1", 4)
	s.Require().NoError(err)
	s.False(outcome.Applied)
}

func (s *ControllerSuite) TestJumpTo() {
	game := s.newGame()
	_, _, _ = s.controller.Play(s.ctx, game.ID, "player-1", 0)
	_, _, _ = s.controller.Play(s.ctx, game.ID, "player-1", 1)

	next, outcome, err := s.controller.JumpTo(s.ctx, game.ID, "player-1", 0)
	s.Require().NoError(err)
	s.True(outcome.Applied)
	s.Equal(0, next.StepNumber)

	stored, _ := s.storage.GetTicTacToe(s.ctx, game.ID)
	s.Equal(0, stored.StepNumber)
	s.Len(stored.History, 3)
}

func (s *ControllerSuite) TestOtherPlayerCannotPlay() {
	game := s.newGame()

	_, _, err := s.controller.Play(s.ctx, game.ID, "player-2", 0)
	s.ErrorIs(err, model.ErrNotOwner)

	_, err = s.controller.GetGame(s.ctx, "missing", "player-1")
	s.ErrorIs(err, model.ErrTicTacToeNotFound)
}

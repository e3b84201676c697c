package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/services/cryptogram"
	"github.com/mcoot/puzzlebox/internal/services/tictactoe"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestPhrases())
}

func (s *IntegrationSuite) newGuest(id, token string) model.PlayerID {
	s.app.MockRandom.QueueString(id, token)
	session, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "")
	s.Require().NoError(err)
	return session.PlayerID
}

// Test: a guest wins a minefield by revealing the only safe cells
func (s *IntegrationSuite) TestMinefieldFlow() {
	player := s.newGuest("guest1", "token1")
	s.Equal(model.PlayerID("p_guest1"), player)

	// 3x1 board, mine on the left
	s.app.MockRandom.QueueIntn(0)
	s.app.MockRandom.QueueString("FIELD1")
	field, err := s.app.MinefieldController.NewGame(s.ctx, player, 3, 1, 1)
	s.Require().NoError(err)

	_, outcome, err := s.app.MinefieldController.ToggleFlag(s.ctx, field.ID, player, 0)
	s.Require().NoError(err)
	s.True(outcome.Applied)

	s.app.MockClock.Advance(time.Minute)
	field, outcome, err = s.app.MinefieldController.Reveal(s.ctx, field.ID, player, 2)
	s.Require().NoError(err)
	s.Equal([]int{2, 1}, outcome.Opened)
	s.Equal(model.MinefieldWon, field.Status)

	// Terminal boards ignore further input
	_, outcome, err = s.app.MinefieldController.ToggleFlag(s.ctx, field.ID, player, 0)
	s.Require().NoError(err)
	s.False(outcome.Applied)
}

// Test: a cryptogram solved by hand is frozen and remembered per player
func (s *IntegrationSuite) TestCryptogramFlow() {
	player := s.newGuest("guest2", "token2")

	// No queued draws: the cipher is the rotation A->B, B->C, ...
	puzzle, err := s.app.CryptogramController.SelectPuzzle(s.ctx, player, 0)
	s.Require().NoError(err)
	s.Equal("BC CB", cryptogram.Ciphertext(puzzle))

	_, outcome, err := s.app.CryptogramController.EnterLetter(s.ctx, player, 0, 'B', 'A', 0)
	s.Require().NoError(err)
	s.Equal(1, outcome.NextFocus)

	puzzle, outcome, err = s.app.CryptogramController.EnterLetter(s.ctx, player, 0, 'C', 'B', 1)
	s.Require().NoError(err)
	s.True(outcome.Solved)
	s.Equal(cryptogram.NoFocus, outcome.NextFocus)
	s.True(puzzle.IsSolved())

	_, hint, err := s.app.CryptogramController.Hint(s.ctx, player, 0)
	s.Require().NoError(err)
	s.False(hint.Applied)

	catalog, err := s.app.CryptogramController.Catalog(s.ctx, player)
	s.Require().NoError(err)
	s.Equal(cryptogram.Catalog{Count: 3, Current: 0}, catalog)

	// Another player starts from scratch
	other := s.newGuest("guest3", "token3")
	fresh, err := s.app.CryptogramController.GetPuzzle(s.ctx, other, 0)
	s.Require().NoError(err)
	s.False(fresh.IsSolved())
}

// Test: tic-tac-toe history survives jumping back and branching
func (s *IntegrationSuite) TestTicTacToeFlow() {
	player := s.newGuest("guest4", "token4")
	s.app.MockRandom.QueueString("GAME1")

	game, err := s.app.TicTacToeController.NewGame(s.ctx, player, 3)
	s.Require().NoError(err)

	for _, square := range []int{0, 3, 1, 4, 2} {
		game, _, err = s.app.TicTacToeController.Play(s.ctx, game.ID, player, square)
		s.Require().NoError(err)
	}
	s.Equal(model.TicTacToeWon, tictactoe.Status(game))

	game, _, err = s.app.TicTacToeController.JumpTo(s.ctx, game.ID, player, 2)
	s.Require().NoError(err)
	game, outcome, err := s.app.TicTacToeController.Play(s.ctx, game.ID, player, 8)
	s.Require().NoError(err)
	s.True(outcome.Applied)
	s.Len(game.History, 4)
	s.Equal(3, game.StepNumber)
}

// Test: the bundled catalog parses and every phrase is playable
func (s *IntegrationSuite) TestBundledCatalog() {
	s.Require().NoError(s.app.PhraseService.LoadFromFile(s.ctx, "../../data/quotes.json"))
	s.Positive(s.app.PhraseService.Count())

	player := s.newGuest("guest5", "token5")
	for i := range s.app.PhraseService.Count() {
		_, err := s.app.CryptogramController.GetPuzzle(s.ctx, player, i)
		s.Require().NoError(err, "phrase %d", i)
	}
}

// Test: New falls back to an empty catalog rather than failing
func TestNewWithoutCatalog(t *testing.T) {
	app, err := New(context.Background(), Config{})
	require.NoError(t, err)
	assert.False(t, app.PhraseService.IsLoaded())
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: "postgres"})
	assert.Error(t, err)
}

func TestNewLoadsPhrasesFromPath(t *testing.T) {
	app, err := New(context.Background(), Config{PhrasesPath: "../../data/quotes.json"})
	require.NoError(t, err)
	assert.True(t, app.PhraseService.IsLoaded())

	_, err = New(context.Background(), Config{PhrasesPath: "missing.json"})
	assert.Error(t, err)
}

func TestNewWithSeedIsReproducible(t *testing.T) {
	seed := uint64(42)
	boards := make([][]model.MineCell, 2)
	for i := range boards {
		app, err := New(context.Background(), Config{RandomSeed: &seed})
		require.NoError(t, err)
		field, err := app.MinefieldController.NewGame(context.Background(), "p", 8, 8, 10)
		require.NoError(t, err)
		boards[i] = field.Cells
	}
	assert.Equal(t, boards[0], boards[1])
}

func TestNewWithSeedKeepsSessionsUnpredictable(t *testing.T) {
	seed := uint64(42)
	tokens := make([]string, 2)
	players := make([]model.PlayerID, 2)
	for i := range tokens {
		app, err := New(context.Background(), Config{RandomSeed: &seed})
		require.NoError(t, err)
		session, err := app.AuthService.CreateGuestPlayer(context.Background(), "Guest")
		require.NoError(t, err)
		tokens[i] = session.Token
		players[i] = session.PlayerID
	}
	assert.NotEqual(t, tokens[0], tokens[1])
	assert.NotEqual(t, players[0], players[1])
}

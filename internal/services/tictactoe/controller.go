package tictactoe

import (
	"context"
	"log/slog"

	"github.com/mcoot/puzzlebox/internal/dependencies/clock"
	"github.com/mcoot/puzzlebox/internal/dependencies/random"
	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/storage"
)

// Controller manages tic-tac-toe games
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new tic-tac-toe Controller
func NewController(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// NewGame starts an empty game for the player
func (c *Controller) NewGame(ctx context.Context, playerID model.PlayerID, width int) (*model.TicTacToe, error) {
	game, err := New(width)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game.ID = model.TicTacToeID(c.random.String(12, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"))
	game.PlayerID = playerID
	game.CreatedAt = now
	game.UpdatedAt = now

	if err := c.storage.SaveTicTacToe(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("tic-tac-toe game created",
		slog.String("game_id", string(game.ID)),
		slog.String("player_id", string(playerID)),
		slog.Int("width", width),
	)
	return game, nil
}

// GetGame returns a game owned by the player
func (c *Controller) GetGame(ctx context.Context, id model.TicTacToeID, playerID model.PlayerID) (*model.TicTacToe, error) {
	game, err := c.storage.GetTicTacToe(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.PlayerID != playerID {
		return nil, model.ErrNotOwner
	}
	return game, nil
}

// Play places the next mark at index
func (c *Controller) Play(ctx context.Context, id model.TicTacToeID, playerID model.PlayerID, index int) (*model.TicTacToe, Outcome, error) {
	game, err := c.GetGame(ctx, id, playerID)
	if err != nil {
		return nil, Outcome{}, err
	}

	next, outcome := Play(game, index)
	if !outcome.Applied {
		return game, outcome, nil
	}
	if err := c.save(ctx, next); err != nil {
		return nil, Outcome{}, err
	}

	if status := Status(next); status != model.TicTacToePlaying {
		mark, _ := Winner(next.Current().Squares, next.Width)
		c.logger.Info("tic-tac-toe game over",
			slog.String("game_id", string(id)),
			slog.String("status", string(status)),
			slog.String("winner", string(mark)),
		)
	}
	return next, outcome, nil
}

// JumpTo moves the game's view to an earlier or later step in its history
func (c *Controller) JumpTo(ctx context.Context, id model.TicTacToeID, playerID model.PlayerID, step int) (*model.TicTacToe, Outcome, error) {
	game, err := c.GetGame(ctx, id, playerID)
	if err != nil {
		return nil, Outcome{}, err
	}

	next, outcome := JumpTo(game, step)
	if !outcome.Applied {
		return game, outcome, nil
	}
	if err := c.save(ctx, next); err != nil {
		return nil, Outcome{}, err
	}
	return next, outcome, nil
}

func (c *Controller) save(ctx context.Context, game *model.TicTacToe) error {
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveTicTacToe(ctx, game); err != nil {
		c.logger.Error("failed to save tic-tac-toe game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context, playerID model.PlayerID, width int) (*model.TicTacToe, error)
	GetGame(ctx context.Context, id model.TicTacToeID, playerID model.PlayerID) (*model.TicTacToe, error)
	Play(ctx context.Context, id model.TicTacToeID, playerID model.PlayerID, index int) (*model.TicTacToe, Outcome, error)
	JumpTo(ctx context.Context, id model.TicTacToeID, playerID model.PlayerID, step int) (*model.TicTacToe, Outcome, error)
}

var _ ControllerInterface = (*Controller)(nil)

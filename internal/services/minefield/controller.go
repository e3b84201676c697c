package minefield

import (
	"context"
	"log/slog"

	"github.com/mcoot/puzzlebox/internal/dependencies/clock"
	"github.com/mcoot/puzzlebox/internal/dependencies/random"
	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/storage"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller runs minefield sessions on behalf of players and persists them
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new minefield Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// NewGame generates and stores a board for the player
func (c *Controller) NewGame(ctx context.Context, playerID model.PlayerID, width, height, mineCount int) (*model.Minefield, error) {
	field, err := Generate(width, height, mineCount, c.random)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	field.ID = model.MinefieldID(c.random.String(12, idAlphabet))
	field.PlayerID = playerID
	field.CreatedAt = now
	field.UpdatedAt = now

	if err := c.storage.SaveMinefield(ctx, field); err != nil {
		c.logger.Error("failed to save minefield",
			slog.String("minefield_id", string(field.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("minefield created",
		slog.String("minefield_id", string(field.ID)),
		slog.String("player_id", string(playerID)),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("mines", mineCount),
	)

	return field, nil
}

// NewPresetGame starts a game using one of the named presets
func (c *Controller) NewPresetGame(ctx context.Context, playerID model.PlayerID, preset string) (*model.Minefield, error) {
	p, err := PresetByName(preset)
	if err != nil {
		return nil, err
	}
	return c.NewGame(ctx, playerID, p.Width, p.Height, p.MineCount)
}

// GetGame returns a board owned by the player
func (c *Controller) GetGame(ctx context.Context, id model.MinefieldID, playerID model.PlayerID) (*model.Minefield, error) {
	field, err := c.storage.GetMinefield(ctx, id)
	if err != nil {
		return nil, err
	}
	if field.PlayerID != playerID {
		return nil, model.ErrNotOwner
	}
	return field, nil
}

// Reveal opens a cell on the player's board
func (c *Controller) Reveal(ctx context.Context, id model.MinefieldID, playerID model.PlayerID, index int) (*model.Minefield, Outcome, error) {
	return c.apply(ctx, id, playerID, "reveal", func(f *model.Minefield) (*model.Minefield, Outcome) {
		return Reveal(f, index)
	})
}

// ToggleFlag flags or unflags a cell on the player's board
func (c *Controller) ToggleFlag(ctx context.Context, id model.MinefieldID, playerID model.PlayerID, index int) (*model.Minefield, Outcome, error) {
	return c.apply(ctx, id, playerID, "flag", func(f *model.Minefield) (*model.Minefield, Outcome) {
		return ToggleFlag(f, index)
	})
}

// apply loads the board, runs an engine action and saves the result if it changed anything
func (c *Controller) apply(
	ctx context.Context,
	id model.MinefieldID,
	playerID model.PlayerID,
	action string,
	fn func(*model.Minefield) (*model.Minefield, Outcome),
) (*model.Minefield, Outcome, error) {
	field, err := c.GetGame(ctx, id, playerID)
	if err != nil {
		return nil, Outcome{}, err
	}

	next, outcome := fn(field)
	if !outcome.Applied {
		c.logger.Debug("minefield action ignored",
			slog.String("minefield_id", string(id)),
			slog.String("action", action),
		)
		return field, outcome, nil
	}

	now := c.clock.Now()
	next.UpdatedAt = now
	if next.IsFinished() {
		next.FinishedAt = now
	}

	if err := c.storage.SaveMinefield(ctx, next); err != nil {
		c.logger.Error("failed to save minefield",
			slog.String("minefield_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, Outcome{}, err
	}

	if next.IsFinished() {
		c.logger.Info("minefield finished",
			slog.String("minefield_id", string(id)),
			slog.String("status", string(next.Status)),
			slog.Duration("elapsed", clock.Elapsed(c.clock, next.CreatedAt, next.FinishedAt)),
		)
	}

	return next, outcome, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context, playerID model.PlayerID, width, height, mineCount int) (*model.Minefield, error)
	NewPresetGame(ctx context.Context, playerID model.PlayerID, preset string) (*model.Minefield, error)
	GetGame(ctx context.Context, id model.MinefieldID, playerID model.PlayerID) (*model.Minefield, error)
	Reveal(ctx context.Context, id model.MinefieldID, playerID model.PlayerID, index int) (*model.Minefield, Outcome, error)
	ToggleFlag(ctx context.Context, id model.MinefieldID, playerID model.PlayerID, index int) (*model.Minefield, Outcome, error)
}

var _ ControllerInterface = (*Controller)(nil)

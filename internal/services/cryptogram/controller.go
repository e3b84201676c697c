package cryptogram

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/puzzlebox/internal/dependencies/clock"
	"github.com/mcoot/puzzlebox/internal/dependencies/random"
	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/services/phrases"
	"github.com/mcoot/puzzlebox/internal/storage"
)

// Catalog summarises the phrase list from one player's point of view
type Catalog struct {
	Count   int
	Current int
}

// Controller manages each player's cryptogram progress. A puzzle is identified
// by the catalog index of its phrase and is created lazily on first access.
type Controller struct {
	storage storage.Storage
	phrases phrases.ServiceInterface
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new cryptogram Controller
func NewController(
	storage storage.Storage,
	phrases phrases.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		phrases: phrases,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Catalog returns the number of phrases and the player's current index
func (c *Controller) Catalog(ctx context.Context, playerID model.PlayerID) (Catalog, error) {
	if !c.phrases.IsLoaded() {
		return Catalog{}, model.ErrCatalogNotLoaded
	}
	current, err := c.CurrentIndex(ctx, playerID)
	if err != nil {
		return Catalog{}, err
	}
	return Catalog{Count: c.phrases.Count(), Current: current}, nil
}

// CurrentIndex returns the puzzle the player last selected, or 0 if none
func (c *Controller) CurrentIndex(ctx context.Context, playerID model.PlayerID) (int, error) {
	index, err := c.storage.GetCurrentPuzzleIndex(ctx, playerID)
	if errors.Is(err, model.ErrPuzzleNotFound) {
		return 0, nil
	}
	return index, err
}

// SelectPuzzle makes index the player's current puzzle and returns it
func (c *Controller) SelectPuzzle(ctx context.Context, playerID model.PlayerID, index int) (*model.Puzzle, error) {
	puzzle, err := c.GetPuzzle(ctx, playerID, index)
	if err != nil {
		return nil, err
	}
	if err := c.storage.SetCurrentPuzzleIndex(ctx, playerID, index); err != nil {
		return nil, err
	}
	return puzzle, nil
}

// GetPuzzle returns the player's puzzle for a phrase, creating it on first access.
// A stored record that no longer matches its phrase is replaced.
func (c *Controller) GetPuzzle(ctx context.Context, playerID model.PlayerID, index int) (*model.Puzzle, error) {
	phrase, err := c.phrases.Get(index)
	if err != nil {
		return nil, err
	}

	record, err := c.storage.GetPuzzleRecord(ctx, playerID, index)
	switch {
	case err == nil:
		puzzle, err := FromRecord(phrase, index, record)
		if err == nil {
			puzzle.PlayerID = playerID
			return puzzle, nil
		}
		if !errors.Is(err, model.ErrInvalidRecord) {
			return nil, err
		}
		c.logger.Warn("discarding stale puzzle record",
			slog.String("player_id", string(playerID)),
			slog.Int("index", index),
			slog.String("error", err.Error()),
		)
	case !errors.Is(err, model.ErrPuzzleNotFound):
		return nil, err
	}

	return c.create(ctx, playerID, index, phrase)
}

// ResetPuzzle discards progress and starts the phrase again with a new cipher
func (c *Controller) ResetPuzzle(ctx context.Context, playerID model.PlayerID, index int) (*model.Puzzle, error) {
	phrase, err := c.phrases.Get(index)
	if err != nil {
		return nil, err
	}
	if err := c.storage.DeletePuzzleRecord(ctx, playerID, index); err != nil {
		return nil, err
	}
	return c.create(ctx, playerID, index, phrase)
}

func (c *Controller) create(ctx context.Context, playerID model.PlayerID, index int, phrase model.Phrase) (*model.Puzzle, error) {
	puzzle, err := NewPuzzle(phrase, index, c.random)
	if err != nil {
		return nil, err
	}
	puzzle.PlayerID = playerID
	puzzle.UpdatedAt = c.clock.Now()

	if err := c.save(ctx, puzzle); err != nil {
		return nil, err
	}

	c.logger.Info("puzzle created",
		slog.String("player_id", string(playerID)),
		slog.Int("index", index),
		slog.Int("letters", puzzle.Goal.Defined().Len()),
	)
	return puzzle, nil
}

// EnterLetter records a guess for a substituted letter. position is the phrase
// position the player typed into and seeds the next-focus search.
func (c *Controller) EnterLetter(
	ctx context.Context,
	playerID model.PlayerID,
	index int,
	substituted, entered rune,
	position int,
) (*model.Puzzle, LetterOutcome, error) {
	puzzle, err := c.GetPuzzle(ctx, playerID, index)
	if err != nil {
		return nil, LetterOutcome{NextFocus: NoFocus}, err
	}

	next, outcome := ApplyLetter(puzzle, substituted, entered, position)
	if !outcome.Applied {
		return puzzle, outcome, nil
	}
	if err := c.commit(ctx, next); err != nil {
		return nil, LetterOutcome{NextFocus: NoFocus}, err
	}
	return next, outcome, nil
}

// Hint reveals one letter of the player's puzzle
func (c *Controller) Hint(ctx context.Context, playerID model.PlayerID, index int) (*model.Puzzle, HintOutcome, error) {
	puzzle, err := c.GetPuzzle(ctx, playerID, index)
	if err != nil {
		return nil, HintOutcome{}, err
	}

	next, outcome := GetHint(puzzle, c.random)
	if !outcome.Applied {
		return puzzle, outcome, nil
	}
	if err := c.commit(ctx, next); err != nil {
		return nil, HintOutcome{}, err
	}

	c.logger.Debug("hint given",
		slog.String("player_id", string(playerID)),
		slog.Int("index", index),
		slog.Int("hints", next.Hints.Len()),
	)
	return next, outcome, nil
}

// commit stamps and saves a changed puzzle
func (c *Controller) commit(ctx context.Context, puzzle *model.Puzzle) error {
	puzzle.UpdatedAt = c.clock.Now()
	if err := c.save(ctx, puzzle); err != nil {
		return err
	}
	if puzzle.IsSolved() {
		c.logger.Info("puzzle solved",
			slog.String("player_id", string(puzzle.PlayerID)),
			slog.Int("index", puzzle.Index),
			slog.Int("hints", puzzle.Hints.Len()),
		)
	}
	return nil
}

func (c *Controller) save(ctx context.Context, puzzle *model.Puzzle) error {
	if err := c.storage.SavePuzzleRecord(ctx, puzzle.PlayerID, puzzle.Index, puzzle.Record()); err != nil {
		c.logger.Error("failed to save puzzle",
			slog.String("player_id", string(puzzle.PlayerID)),
			slog.Int("index", puzzle.Index),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Catalog(ctx context.Context, playerID model.PlayerID) (Catalog, error)
	CurrentIndex(ctx context.Context, playerID model.PlayerID) (int, error)
	SelectPuzzle(ctx context.Context, playerID model.PlayerID, index int) (*model.Puzzle, error)
	GetPuzzle(ctx context.Context, playerID model.PlayerID, index int) (*model.Puzzle, error)
	ResetPuzzle(ctx context.Context, playerID model.PlayerID, index int) (*model.Puzzle, error)
	EnterLetter(ctx context.Context, playerID model.PlayerID, index int, substituted, entered rune, position int) (*model.Puzzle, LetterOutcome, error)
	Hint(ctx context.Context, playerID model.PlayerID, index int) (*model.Puzzle, HintOutcome, error)
}

var _ ControllerInterface = (*Controller)(nil)

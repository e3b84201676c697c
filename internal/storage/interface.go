package storage

import (
	"context"

	"github.com/mcoot/puzzlebox/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Minefield operations
	SaveMinefield(ctx context.Context, field *model.Minefield) error
	GetMinefield(ctx context.Context, id model.MinefieldID) (*model.Minefield, error)
	DeleteMinefield(ctx context.Context, id model.MinefieldID) error

	// Cryptogram operations. Records are keyed by player and catalog index.
	SavePuzzleRecord(ctx context.Context, playerID model.PlayerID, index int, record *model.PuzzleRecord) error
	GetPuzzleRecord(ctx context.Context, playerID model.PlayerID, index int) (*model.PuzzleRecord, error)
	DeletePuzzleRecord(ctx context.Context, playerID model.PlayerID, index int) error
	// GetCurrentPuzzleIndex returns model.ErrPuzzleNotFound if the player never selected a puzzle
	GetCurrentPuzzleIndex(ctx context.Context, playerID model.PlayerID) (int, error)
	SetCurrentPuzzleIndex(ctx context.Context, playerID model.PlayerID, index int) error

	// Tic-tac-toe operations
	SaveTicTacToe(ctx context.Context, game *model.TicTacToe) error
	GetTicTacToe(ctx context.Context, id model.TicTacToeID) (*model.TicTacToe, error)
	DeleteTicTacToe(ctx context.Context, id model.TicTacToeID) error

	// Phrase catalog operations
	GetPhrases(ctx context.Context) ([]model.Phrase, error)
	SavePhrases(ctx context.Context, phrases []model.Phrase) error
}

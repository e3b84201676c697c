package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/puzzlebox/internal/dependencies/clock"
	"github.com/mcoot/puzzlebox/internal/dependencies/random"
	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/services/auth"
	"github.com/mcoot/puzzlebox/internal/services/cryptogram"
	"github.com/mcoot/puzzlebox/internal/services/minefield"
	"github.com/mcoot/puzzlebox/internal/services/phrases"
	"github.com/mcoot/puzzlebox/internal/services/tictactoe"
	"github.com/mcoot/puzzlebox/internal/storage"
	"github.com/mcoot/puzzlebox/internal/storage/memory"
	redisstorage "github.com/mcoot/puzzlebox/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies. Random drives the puzzles and may be seeded.
	Clock  clock.Clock
	Random random.Random

	// Services
	PhraseService        *phrases.Service
	AuthService          *auth.Service
	MinefieldController  *minefield.Controller
	CryptogramController *cryptogram.Controller
	TicTacToeController  *tictactoe.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// PhrasesPath is a JSON or YAML phrase catalog (optional).
	// If empty, the catalog saved in storage is used when there is one.
	PhrasesPath string
	// RandomSeed makes every board and cipher reproducible when non-nil
	RandomSeed *uint64
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired and the phrase
// catalog loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	// The seed only reaches the puzzles. Tokens and player IDs always come
	// from crypto/rand so a known seed cannot be used to forge sessions.
	secure := random.New()
	var rnd random.Random = secure
	if cfg.RandomSeed != nil {
		rnd = random.NewSeeded(*cfg.RandomSeed)
		logger.Warn("using seeded random source for puzzles")
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	app := newWithDependencies(store, clock.New(), rnd, secure, authCfg, logger)
	if err := app.loadPhrases(ctx, cfg.PhrasesPath, logger); err != nil {
		return nil, err
	}
	return app, nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	switch cfg.StorageType {
	case "", StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory' or 'redis'", cfg.StorageType)
	}
}

// loadPhrases prefers the configured file and falls back to the stored catalog.
// Starting without any catalog is allowed; cryptogram requests then fail until one is loaded.
func (a *App) loadPhrases(ctx context.Context, path string, logger *slog.Logger) error {
	if path != "" {
		return a.PhraseService.LoadFromFile(ctx, path)
	}
	err := a.PhraseService.LoadFromStorage(ctx)
	if errors.Is(err, model.ErrCatalogNotLoaded) {
		logger.Warn("no phrase catalog configured; cryptograms unavailable")
		return nil
	}
	return err
}

// newWithDependencies creates an App with the given dependencies (useful for testing).
// rnd drives the puzzles; authRnd generates session tokens and player IDs.
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd, authRnd random.Random,
	authCfg auth.Config,
	logger *slog.Logger,
) *App {
	phraseService := phrases.New(store, logger)

	return &App{
		Storage:              store,
		Clock:                clk,
		Random:               rnd,
		PhraseService:        phraseService,
		AuthService:          auth.New(store, clk, authRnd, logger, authCfg),
		MinefieldController:  minefield.NewController(store, clk, rnd, logger),
		CryptogramController: cryptogram.NewController(store, phraseService, clk, rnd, logger),
		TicTacToeController:  tictactoe.NewController(store, clk, rnd, logger),
	}
}

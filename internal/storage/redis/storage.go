package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Entities are stored as JSON strings under the keys defined in keys.go.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// getJSON decodes the value at key into dest, returning notFound if the key is missing
func (s *Storage) getJSON(ctx context.Context, key string, dest any, notFound error) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return notFound
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	// Registered players never expire
	var ttl time.Duration
	if player.IsGuest {
		ttl = s.cfg.GuestPlayerTTL
	}
	return s.setJSON(ctx, playerKey(player.ID), player, ttl)
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var player model.Player
	if err := s.getJSON(ctx, playerKey(id), &player, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return s.client.Del(ctx, playerKey(id)).Err()
}

// Registered player operations

func (s *Storage) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	data, err := json.Marshal(rp)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, registeredPlayerKey(rp.PlayerID), data, 0)
	pipe.Set(ctx, usernameIndexKey(rp.Username), string(rp.PlayerID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error) {
	var rp model.RegisteredPlayer
	if err := s.getJSON(ctx, registeredPlayerKey(playerID), &rp, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &rp, nil
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	playerID, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return s.GetRegisteredPlayer(ctx, model.PlayerID(playerID))
}

// Minefield operations

func (s *Storage) SaveMinefield(ctx context.Context, field *model.Minefield) error {
	return s.setJSON(ctx, minefieldKey(field.ID), field, s.cfg.MinefieldTTL)
}

func (s *Storage) GetMinefield(ctx context.Context, id model.MinefieldID) (*model.Minefield, error) {
	var field model.Minefield
	if err := s.getJSON(ctx, minefieldKey(id), &field, model.ErrMinefieldNotFound); err != nil {
		return nil, err
	}
	return &field, nil
}

func (s *Storage) DeleteMinefield(ctx context.Context, id model.MinefieldID) error {
	return s.client.Del(ctx, minefieldKey(id)).Err()
}

// Cryptogram operations

func (s *Storage) SavePuzzleRecord(ctx context.Context, playerID model.PlayerID, index int, record *model.PuzzleRecord) error {
	return s.setJSON(ctx, puzzleRecordKey(playerID, index), record, s.cfg.PuzzleTTL)
}

func (s *Storage) GetPuzzleRecord(ctx context.Context, playerID model.PlayerID, index int) (*model.PuzzleRecord, error) {
	var record model.PuzzleRecord
	if err := s.getJSON(ctx, puzzleRecordKey(playerID, index), &record, model.ErrPuzzleNotFound); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) DeletePuzzleRecord(ctx context.Context, playerID model.PlayerID, index int) error {
	return s.client.Del(ctx, puzzleRecordKey(playerID, index)).Err()
}

func (s *Storage) GetCurrentPuzzleIndex(ctx context.Context, playerID model.PlayerID) (int, error) {
	value, err := s.client.Get(ctx, currentPuzzleKey(playerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, model.ErrPuzzleNotFound
		}
		return 0, err
	}
	return strconv.Atoi(value)
}

func (s *Storage) SetCurrentPuzzleIndex(ctx context.Context, playerID model.PlayerID, index int) error {
	return s.client.Set(ctx, currentPuzzleKey(playerID), index, s.cfg.PuzzleTTL).Err()
}

// Tic-tac-toe operations

func (s *Storage) SaveTicTacToe(ctx context.Context, game *model.TicTacToe) error {
	return s.setJSON(ctx, ticTacToeKey(game.ID), game, s.cfg.TicTacToeTTL)
}

func (s *Storage) GetTicTacToe(ctx context.Context, id model.TicTacToeID) (*model.TicTacToe, error) {
	var game model.TicTacToe
	if err := s.getJSON(ctx, ticTacToeKey(id), &game, model.ErrTicTacToeNotFound); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteTicTacToe(ctx context.Context, id model.TicTacToeID) error {
	return s.client.Del(ctx, ticTacToeKey(id)).Err()
}

// Phrase catalog operations

func (s *Storage) GetPhrases(ctx context.Context) ([]model.Phrase, error) {
	var phrases []model.Phrase
	if err := s.getJSON(ctx, phrasesKey(), &phrases, model.ErrCatalogNotLoaded); err != nil {
		return nil, err
	}
	if phrases == nil {
		phrases = []model.Phrase{}
	}
	return phrases, nil
}

func (s *Storage) SavePhrases(ctx context.Context, phrases []model.Phrase) error {
	if phrases == nil {
		phrases = []model.Phrase{}
	}
	return s.setJSON(ctx, phrasesKey(), phrases, 0)
}

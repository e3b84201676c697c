package memory

import (
	"context"
	"sync"

	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Games are cloned on the way in and out so callers never share state with the store.
type Storage struct {
	mu sync.RWMutex

	players           map[model.PlayerID]*model.Player
	registeredPlayers map[model.PlayerID]*model.RegisteredPlayer
	usernameIndex     map[string]model.PlayerID
	minefields        map[model.MinefieldID]*model.Minefield
	puzzleRecords     map[puzzleKey]model.PuzzleRecord
	currentPuzzle     map[model.PlayerID]int
	ticTacToes        map[model.TicTacToeID]*model.TicTacToe
	phrases           []model.Phrase
}

type puzzleKey struct {
	playerID model.PlayerID
	index    int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:           make(map[model.PlayerID]*model.Player),
		registeredPlayers: make(map[model.PlayerID]*model.RegisteredPlayer),
		usernameIndex:     make(map[string]model.PlayerID),
		minefields:        make(map[model.MinefieldID]*model.Minefield),
		puzzleRecords:     make(map[puzzleKey]model.PuzzleRecord),
		currentPuzzle:     make(map[model.PlayerID]int),
		ticTacToes:        make(map[model.TicTacToeID]*model.TicTacToe),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Registered player operations

func (s *Storage) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registeredPlayers[rp.PlayerID] = rp
	s.usernameIndex[rp.Username] = rp.PlayerID
	return nil
}

func (s *Storage) GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return rp, nil
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	playerID, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return rp, nil
}

// Minefield operations

func (s *Storage) SaveMinefield(ctx context.Context, field *model.Minefield) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.minefields[field.ID] = field.Clone()
	return nil
}

func (s *Storage) GetMinefield(ctx context.Context, id model.MinefieldID) (*model.Minefield, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	field, ok := s.minefields[id]
	if !ok {
		return nil, model.ErrMinefieldNotFound
	}
	return field.Clone(), nil
}

func (s *Storage) DeleteMinefield(ctx context.Context, id model.MinefieldID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.minefields, id)
	return nil
}

// Cryptogram operations

func (s *Storage) SavePuzzleRecord(ctx context.Context, playerID model.PlayerID, index int, record *model.PuzzleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzleRecords[puzzleKey{playerID: playerID, index: index}] = *record
	return nil
}

func (s *Storage) GetPuzzleRecord(ctx context.Context, playerID model.PlayerID, index int) (*model.PuzzleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.puzzleRecords[puzzleKey{playerID: playerID, index: index}]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return &record, nil
}

func (s *Storage) DeletePuzzleRecord(ctx context.Context, playerID model.PlayerID, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.puzzleRecords, puzzleKey{playerID: playerID, index: index})
	return nil
}

func (s *Storage) GetCurrentPuzzleIndex(ctx context.Context, playerID model.PlayerID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index, ok := s.currentPuzzle[playerID]
	if !ok {
		return 0, model.ErrPuzzleNotFound
	}
	return index, nil
}

func (s *Storage) SetCurrentPuzzleIndex(ctx context.Context, playerID model.PlayerID, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPuzzle[playerID] = index
	return nil
}

// Tic-tac-toe operations

func (s *Storage) SaveTicTacToe(ctx context.Context, game *model.TicTacToe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticTacToes[game.ID] = game.Clone()
	return nil
}

func (s *Storage) GetTicTacToe(ctx context.Context, id model.TicTacToeID) (*model.TicTacToe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.ticTacToes[id]
	if !ok {
		return nil, model.ErrTicTacToeNotFound
	}
	return game.Clone(), nil
}

func (s *Storage) DeleteTicTacToe(ctx context.Context, id model.TicTacToeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ticTacToes, id)
	return nil
}

// Phrase catalog operations

func (s *Storage) GetPhrases(ctx context.Context) ([]model.Phrase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.phrases == nil {
		return nil, model.ErrCatalogNotLoaded
	}
	result := make([]model.Phrase, len(s.phrases))
	copy(result, s.phrases)
	return result, nil
}

func (s *Storage) SavePhrases(ctx context.Context, phrases []model.Phrase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phrases = make([]model.Phrase, len(phrases))
	copy(s.phrases, phrases)
	return nil
}

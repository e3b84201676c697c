package phrases

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/storage"
)

// Service holds the ordered phrase catalog. A phrase's position in the catalog
// is its puzzle index, so the order is never changed after loading.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu      sync.RWMutex
	phrases []model.Phrase
	loaded  bool
}

// New creates a new phrase Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// LoadFromStorage loads the catalog previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	phrases, err := s.storage.GetPhrases(ctx)
	if err != nil {
		return err
	}
	return s.LoadPhrases(phrases)
}

// LoadFromFile reads a JSON or YAML list of phrases, saves it to storage and loads it
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	phrases, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if err := s.LoadPhrases(phrases); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	if err := s.storage.SavePhrases(ctx, phrases); err != nil {
		return err
	}

	s.logger.Info("phrase catalog loaded",
		slog.String("path", path),
		slog.Int("count", len(phrases)),
	)
	return nil
}

// Parse decodes a phrase list. ext selects the format: ".json", ".yaml" or ".yml".
func Parse(data []byte, ext string) ([]model.Phrase, error) {
	var phrases []model.Phrase
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &phrases); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &phrases); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported phrase file format %q", ext)
	}
	return phrases, nil
}

// LoadPhrases replaces the catalog. Every phrase must contain at least one letter.
func (s *Service) LoadPhrases(phrases []model.Phrase) error {
	for i, p := range phrases {
		if model.NewLetterSet(p.Text).Len() == 0 {
			return fmt.Errorf("phrase %d: %w", i, model.ErrInvalidPhrase)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.phrases = make([]model.Phrase, len(phrases))
	copy(s.phrases, phrases)
	s.loaded = true
	return nil
}

// Get returns the phrase at index
func (s *Service) Get(index int) (model.Phrase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return model.Phrase{}, model.ErrCatalogNotLoaded
	}
	if index < 0 || index >= len(s.phrases) {
		return model.Phrase{}, fmt.Errorf("%w: index %d of %d", model.ErrPhraseNotFound, index, len(s.phrases))
	}
	return s.phrases[index], nil
}

// Count returns the number of phrases in the catalog
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.phrases)
}

// IsLoaded returns whether a catalog has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Interface check
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadPhrases(phrases []model.Phrase) error
	Get(index int) (model.Phrase, error)
	Count() int
	IsLoaded() bool
}

var _ ServiceInterface = (*Service)(nil)

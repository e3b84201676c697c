package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// TTL settings for different entity types. Zero disables expiry.
	GuestPlayerTTL time.Duration
	MinefieldTTL   time.Duration
	TicTacToeTTL   time.Duration
	PuzzleTTL      time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration.
// Cryptogram progress outlives a single session, so puzzles are kept for a month.
func DefaultConfig() Config {
	return Config{
		URL:            "redis://localhost:6379",
		PoolSize:       10,
		MinIdleConns:   2,
		GuestPlayerTTL: 24 * time.Hour,
		MinefieldTTL:   24 * time.Hour,
		TicTacToeTTL:   24 * time.Hour,
		PuzzleTTL:      30 * 24 * time.Hour,
	}
}

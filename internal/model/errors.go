package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotOwner       = errors.New("game belongs to another player")

	// Construction errors
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrUnknownPreset        = errors.New("unknown difficulty preset")

	// Minefield errors
	ErrMinefieldNotFound = errors.New("minefield not found")

	// Cryptogram errors
	ErrPhraseNotFound   = errors.New("phrase not found")
	ErrInvalidPhrase    = errors.New("phrase contains no letters")
	ErrPuzzleNotFound   = errors.New("puzzle not found")
	ErrInvalidRecord    = errors.New("puzzle record does not match phrase")
	ErrCatalogNotLoaded = errors.New("phrase catalog not loaded")

	// Tic-tac-toe errors
	ErrTicTacToeNotFound = errors.New("tic-tac-toe game not found")
)

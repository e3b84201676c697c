package model

import "time"

// TicTacToeID uniquely identifies a tic-tac-toe game
type TicTacToeID string

// Mark is the content of a tic-tac-toe square
type Mark string

const (
	MarkNone Mark = ""
	MarkX    Mark = "X"
	MarkO    Mark = "O"
)

// TicTacToeStatus represents the outcome of the position being viewed
type TicTacToeStatus string

const (
	TicTacToePlaying TicTacToeStatus = "playing"
	TicTacToeWon     TicTacToeStatus = "won"
	TicTacToeDraw    TicTacToeStatus = "draw"
)

// TicTacToeStep is one position in the move history
type TicTacToeStep struct {
	Squares  []Mark
	LastMove int // -1 for the starting position
}

// TicTacToe is an NxN game with a full move history
type TicTacToe struct {
	ID         TicTacToeID
	PlayerID   PlayerID
	Width      int
	History    []TicTacToeStep
	StepNumber int // Index into History of the position being viewed
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Current returns the position being viewed
func (g *TicTacToe) Current() TicTacToeStep {
	return g.History[g.StepNumber]
}

// Clone returns a deep copy of the game
func (g *TicTacToe) Clone() *TicTacToe {
	clone := *g
	clone.History = make([]TicTacToeStep, len(g.History))
	for i, step := range g.History {
		squares := make([]Mark, len(step.Squares))
		copy(squares, step.Squares)
		clone.History[i] = TicTacToeStep{Squares: squares, LastMove: step.LastMove}
	}
	return &clone
}

package tictactoe

import (
	"fmt"

	"github.com/mcoot/puzzlebox/internal/model"
)

// Board size limits
const (
	MinWidth = 2
	MaxWidth = 8
)

// Outcome reports whether a move or jump changed the game
type Outcome struct {
	Applied bool
}

// New returns an empty width x width game with only the starting position in its history
func New(width int) (*model.TicTacToe, error) {
	if width < MinWidth || width > MaxWidth {
		return nil, fmt.Errorf("%w: width must be in [%d, %d], got %d", model.ErrInvalidConfiguration, MinWidth, MaxWidth, width)
	}
	return &model.TicTacToe{
		Width: width,
		History: []model.TicTacToeStep{
			{Squares: make([]model.Mark, width*width), LastMove: -1},
		},
	}, nil
}

// Lines returns every winning line: rows, then columns, then the two diagonals
func Lines(width int) [][]int {
	lines := make([][]int, 0, 2*width+2)
	for r := 0; r < width; r++ {
		row := make([]int, width)
		for c := range row {
			row[c] = r*width + c
		}
		lines = append(lines, row)
	}
	for c := 0; c < width; c++ {
		col := make([]int, width)
		for r := range col {
			col[r] = r*width + c
		}
		lines = append(lines, col)
	}
	diag := make([]int, width)
	anti := make([]int, width)
	for i := 0; i < width; i++ {
		diag[i] = i*width + i
		anti[i] = i*width + (width - 1 - i)
	}
	return append(lines, diag, anti)
}

// Winner returns the mark owning a complete line and the squares of that line,
// or MarkNone and nil
func Winner(squares []model.Mark, width int) (model.Mark, []int) {
	for _, line := range Lines(width) {
		first := squares[line[0]]
		if first == model.MarkNone {
			continue
		}
		complete := true
		for _, i := range line[1:] {
			if squares[i] != first {
				complete = false
				break
			}
		}
		if complete {
			return first, line
		}
	}
	return model.MarkNone, nil
}

// NextMark returns who moves from the given step; X always opens
func NextMark(step int) model.Mark {
	if step%2 == 0 {
		return model.MarkX
	}
	return model.MarkO
}

// Status evaluates the position currently being viewed
func Status(game *model.TicTacToe) model.TicTacToeStatus {
	if mark, _ := Winner(game.Current().Squares, game.Width); mark != model.MarkNone {
		return model.TicTacToeWon
	}
	if game.StepNumber >= game.Width*game.Width {
		return model.TicTacToeDraw
	}
	return model.TicTacToePlaying
}

// Play places the next mark at index. Moving from an earlier step discards the
// later history. Occupied squares, finished positions and bad indices are ignored.
func Play(game *model.TicTacToe, index int) (*model.TicTacToe, Outcome) {
	current := game.Current()
	if index < 0 || index >= len(current.Squares) || current.Squares[index] != model.MarkNone {
		return game, Outcome{}
	}
	if Status(game) != model.TicTacToePlaying {
		return game, Outcome{}
	}

	next := game.Clone()
	next.History = next.History[:game.StepNumber+1]

	squares := make([]model.Mark, len(current.Squares))
	copy(squares, current.Squares)
	squares[index] = NextMark(game.StepNumber)

	next.History = append(next.History, model.TicTacToeStep{Squares: squares, LastMove: index})
	next.StepNumber = len(next.History) - 1
	return next, Outcome{Applied: true}
}

// JumpTo views an earlier or later step without discarding history
func JumpTo(game *model.TicTacToe, step int) (*model.TicTacToe, Outcome) {
	if step < 0 || step >= len(game.History) || step == game.StepNumber {
		return game, Outcome{}
	}
	next := game.Clone()
	next.StepNumber = step
	return next, Outcome{Applied: true}
}

package model

import "time"

// MinefieldID uniquely identifies a minefield game
type MinefieldID string

// MinefieldStatus represents the current phase of a minefield game
type MinefieldStatus string

const (
	MinefieldPlaying MinefieldStatus = "playing"
	MinefieldWon     MinefieldStatus = "won"
	MinefieldLost    MinefieldStatus = "lost"
)

// MineCell is a single square of a minefield
type MineCell struct {
	HasMine  bool
	Revealed bool
	Flagged  bool
	// AdjacentCount is only meaningful once the cell is revealed and safe
	AdjacentCount int
}

// Minefield is a rectangular grid of cells stored row-major: index = row*Width + col
type Minefield struct {
	ID         MinefieldID
	PlayerID   PlayerID
	Width      int
	Height     int
	MineCount  int
	Cells      []MineCell
	Status     MinefieldStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
	FinishedAt time.Time // Zero while playing
}

// Size returns the total number of cells
func (m *Minefield) Size() int {
	return m.Width * m.Height
}

// IsValidIndex returns true if the index addresses a cell on the board
func (m *Minefield) IsValidIndex(index int) bool {
	return index >= 0 && index < len(m.Cells)
}

// IsFinished returns true once the game has been won or lost
func (m *Minefield) IsFinished() bool {
	return m.Status != MinefieldPlaying
}

// HiddenCount returns the number of cells not yet revealed
func (m *Minefield) HiddenCount() int {
	count := 0
	for _, c := range m.Cells {
		if !c.Revealed {
			count++
		}
	}
	return count
}

// FlagCount returns the number of flagged cells
func (m *Minefield) FlagCount() int {
	count := 0
	for _, c := range m.Cells {
		if c.Flagged {
			count++
		}
	}
	return count
}

// Clone returns a deep copy so callers can mutate without affecting the original
func (m *Minefield) Clone() *Minefield {
	clone := *m
	clone.Cells = make([]MineCell, len(m.Cells))
	copy(clone.Cells, m.Cells)
	return &clone
}

// RowCol converts a cell index to its row and column
func (m *Minefield) RowCol(index int) (row, col int) {
	return index / m.Width, index % m.Width
}

// Index converts a row and column to a cell index, or -1 if out of bounds
func (m *Minefield) Index(row, col int) int {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return -1
	}
	return row*m.Width + col
}

// MinefieldPreset is a named board configuration
type MinefieldPreset struct {
	Name      string
	Width     int
	Height    int
	MineCount int
}

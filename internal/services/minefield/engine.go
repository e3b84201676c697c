package minefield

import (
	"fmt"
	"strconv"

	"github.com/mcoot/puzzlebox/internal/dependencies/random"
	"github.com/mcoot/puzzlebox/internal/model"
)

// MaxDimension bounds each side of a board so the cell count stays small and
// width*height cannot overflow
const MaxDimension = 100

// Outcome describes what a mutation did. Rejected actions leave Applied false
// and return the board unchanged.
type Outcome struct {
	Applied bool
	// Opened lists every cell index revealed by the action, in reveal order
	Opened []int
}

// Generate builds a new board with mineCount mines placed uniformly at random.
// Placement is rejection sampling, which is fine because at least one cell is always free.
func Generate(width, height, mineCount int, rnd random.Random) (*model.Minefield, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: board must be at least 1x1, got %dx%d", model.ErrInvalidConfiguration, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: board must be at most %dx%d, got %dx%d",
			model.ErrInvalidConfiguration, MaxDimension, MaxDimension, width, height)
	}
	total := width * height
	if mineCount < 0 || mineCount >= total {
		return nil, fmt.Errorf("%w: mine count must be in [0, %d), got %d", model.ErrInvalidConfiguration, total, mineCount)
	}

	cells := make([]model.MineCell, total)
	for placed := 0; placed < mineCount; {
		i := rnd.Intn(total)
		if cells[i].HasMine {
			continue
		}
		cells[i].HasMine = true
		placed++
	}

	return &model.Minefield{
		Width:     width,
		Height:    height,
		MineCount: mineCount,
		Cells:     cells,
		Status:    model.MinefieldPlaying,
	}, nil
}

// Neighbors returns the indices of the up to 8 cells surrounding index.
// Edges are clamped; the grid does not wrap.
func Neighbors(width, height, index int) []int {
	row, col := index/width, index%width
	neighbors := make([]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r < 0 || r >= height || c < 0 || c >= width {
				continue
			}
			neighbors = append(neighbors, r*width+c)
		}
	}
	return neighbors
}

// AdjacentMines counts the mines around index. Every mine counts, whether or
// not it has been revealed or flagged.
func AdjacentMines(field *model.Minefield, index int) int {
	count := 0
	for _, n := range Neighbors(field.Width, field.Height, index) {
		if field.Cells[n].HasMine {
			count++
		}
	}
	return count
}

// ToggleFlag flips the flag on a hidden cell
func ToggleFlag(field *model.Minefield, index int) (*model.Minefield, Outcome) {
	if field.IsFinished() || !field.IsValidIndex(index) || field.Cells[index].Revealed {
		return field, Outcome{}
	}

	next := field.Clone()
	next.Cells[index].Flagged = !next.Cells[index].Flagged
	return next, Outcome{Applied: true}
}

// Reveal opens a cell. A mine loses the game; a cell with no adjacent mines
// opens its hidden, unflagged neighbours, repeating until the region is bordered
// by numbered cells. The game is won once only mines remain hidden.
func Reveal(field *model.Minefield, index int) (*model.Minefield, Outcome) {
	if field.IsFinished() || !field.IsValidIndex(index) {
		return field, Outcome{}
	}
	if cell := field.Cells[index]; cell.Revealed || cell.Flagged {
		return field, Outcome{}
	}

	next := field.Clone()
	next.Cells[index].Revealed = true
	opened := []int{index}

	if next.Cells[index].HasMine {
		next.Status = model.MinefieldLost
		return next, Outcome{Applied: true, Opened: opened}
	}

	queue := []int{index}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		count := AdjacentMines(next, current)
		next.Cells[current].AdjacentCount = count
		if count > 0 {
			continue
		}
		for _, n := range Neighbors(next.Width, next.Height, current) {
			cell := &next.Cells[n]
			if cell.Revealed || cell.Flagged {
				continue
			}
			// Marking before enqueueing keeps each cell in the queue at most once
			cell.Revealed = true
			opened = append(opened, n)
			queue = append(queue, n)
		}
	}

	if next.HiddenCount() <= next.MineCount {
		next.Status = model.MinefieldWon
	}
	return next, Outcome{Applied: true, Opened: opened}
}

// CellDisplay returns what a player may see of a cell: "" while hidden, "!" when
// flagged, "X" for a revealed mine and the adjacent count for a revealed safe cell.
func CellDisplay(cell model.MineCell) string {
	switch {
	case cell.Revealed && cell.HasMine:
		return "X"
	case cell.Revealed:
		return strconv.Itoa(cell.AdjacentCount)
	case cell.Flagged:
		return "!"
	default:
		return ""
	}
}

// Display returns the display value of every cell in index order
func Display(field *model.Minefield) []string {
	out := make([]string, len(field.Cells))
	for i, cell := range field.Cells {
		out[i] = CellDisplay(cell)
	}
	return out
}

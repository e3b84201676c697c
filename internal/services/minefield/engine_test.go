package minefield

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/puzzlebox/internal/dependencies/mocks"
	"github.com/mcoot/puzzlebox/internal/dependencies/random"
	"github.com/mcoot/puzzlebox/internal/model"
)

type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// layout builds a playing board from rows of '.' (safe) and '*' (mine)
func layout(rows ...string) *model.Minefield {
	field := &model.Minefield{
		Width:  len(rows[0]),
		Height: len(rows),
		Status: model.MinefieldPlaying,
	}
	for _, row := range rows {
		for _, c := range row {
			cell := model.MineCell{HasMine: c == '*'}
			if cell.HasMine {
				field.MineCount++
			}
			field.Cells = append(field.Cells, cell)
		}
	}
	return field
}

func countMines(field *model.Minefield) int {
	n := 0
	for _, c := range field.Cells {
		if c.HasMine {
			n++
		}
	}
	return n
}

// Generate tests

func (s *EngineSuite) TestGenerateRejectsInvalidConfiguration() {
	cases := []struct {
		name                    string
		width, height, numMines int
	}{
		{"zero width", 0, 5, 1},
		{"zero height", 5, 0, 1},
		{"negative mines", 5, 5, -1},
		{"board full of mines", 5, 5, 25},
		{"more mines than cells", 2, 2, 9},
		{"width over limit", MaxDimension + 1, 1, 0},
		{"height over limit", 1, MaxDimension + 1, 0},
		{"huge board", 100000, 100000, 10},
		{"cell count overflows int", math.MaxInt/4 + 1, 4, 1},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := Generate(tc.width, tc.height, tc.numMines, random.NewSeeded(1))
			s.ErrorIs(err, model.ErrInvalidConfiguration)
		})
	}
}

func (s *EngineSuite) TestGenerateLargestBoard() {
	field, err := Generate(MaxDimension, MaxDimension, 1, random.NewSeeded(1))
	s.Require().NoError(err)
	s.Len(field.Cells, MaxDimension*MaxDimension)

	// Every cell index stays inside the board, including the far corner
	next, outcome := Reveal(field, len(field.Cells)-1)
	s.True(outcome.Applied)
	s.True(next.Cells[len(next.Cells)-1].Revealed)
}

func (s *EngineSuite) TestGeneratePlacesExactMineCount() {
	for seed := uint64(0); seed < 20; seed++ {
		field, err := Generate(8, 6, 20, random.NewSeeded(seed))
		s.Require().NoError(err)
		s.Len(field.Cells, 48)
		s.Equal(20, countMines(field))
		s.Equal(model.MinefieldPlaying, field.Status)
		s.Equal(48, field.HiddenCount())
		s.Zero(field.FlagCount())
	}
}

func (s *EngineSuite) TestGenerateSkipsDuplicatePicks() {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(3, 3, 3, 7)

	field, err := Generate(5, 5, 2, rnd)
	s.Require().NoError(err)

	s.True(field.Cells[3].HasMine)
	s.True(field.Cells[7].HasMine)
	s.Equal(2, countMines(field))
	s.Equal([]int{25, 25, 25, 25}, rnd.IntnCalls)
}

func (s *EngineSuite) TestGenerateWithNoMines() {
	field, err := Generate(1, 1, 0, random.NewSeeded(1))
	s.Require().NoError(err)
	s.Zero(countMines(field))
}

func (s *EngineSuite) TestGenerateSameSeedSameBoard() {
	a, err := Generate(10, 10, 15, random.NewSeeded(42))
	s.Require().NoError(err)
	b, err := Generate(10, 10, 15, random.NewSeeded(42))
	s.Require().NoError(err)
	s.Equal(a.Cells, b.Cells)
}

// Neighbor tests

func (s *EngineSuite) TestNeighborsClampAtEdges() {
	s.ElementsMatch([]int{1, 3, 4}, Neighbors(3, 3, 0))
	s.ElementsMatch([]int{0, 2, 3, 4, 5}, Neighbors(3, 3, 1))
	s.ElementsMatch([]int{0, 1, 2, 3, 5, 6, 7, 8}, Neighbors(3, 3, 4))
	s.Empty(Neighbors(1, 1, 0))
}

func (s *EngineSuite) TestNeighborsDoNotWrap() {
	// Right edge of row 0 must not see the left edge of row 1
	s.ElementsMatch([]int{1, 4, 5}, Neighbors(3, 3, 2))
}

func (s *EngineSuite) TestAdjacentMinesCountsRevealedMines() {
	field := layout(
		"*.",
		"..",
	)
	field.Cells[0].Revealed = true
	s.Equal(1, AdjacentMines(field, 3))
}

// Reveal tests

func (s *EngineSuite) TestRevealMineLoses() {
	field := layout(
		"*..",
		"...",
	)

	next, outcome := Reveal(field, 0)

	s.True(outcome.Applied)
	s.Equal([]int{0}, outcome.Opened)
	s.Equal(model.MinefieldLost, next.Status)
	s.Equal(5, next.HiddenCount(), "a mine never cascades")
}

func (s *EngineSuite) TestRevealNumberedCellDoesNotCascade() {
	field := layout(
		"*..",
		"...",
		"...",
	)

	next, outcome := Reveal(field, 4)

	s.True(outcome.Applied)
	s.Equal([]int{4}, outcome.Opened)
	s.Equal(1, next.Cells[4].AdjacentCount)
	s.Equal(model.MinefieldPlaying, next.Status)
}

func (s *EngineSuite) TestRevealCascadeStopsAtFlags() {
	field := layout(
		"...",
		"...",
		"..*",
	)
	field, _ = ToggleFlag(field, 1)

	next, outcome := Reveal(field, 0)

	s.True(outcome.Applied)
	s.Equal([]int{0, 3, 4, 6, 7}, outcome.Opened)
	s.False(next.Cells[1].Revealed)
	s.True(next.Cells[1].Flagged)
	s.False(next.Cells[2].Revealed)
	s.Equal(1, next.Cells[4].AdjacentCount)
	s.Equal(model.MinefieldPlaying, next.Status)
}

func (s *EngineSuite) TestRevealCascadeOpensBorderingNumbers() {
	field := layout(
		".....",
		".....",
		"....*",
	)

	next, _ := Reveal(field, 0)

	for i, cell := range next.Cells {
		if cell.HasMine {
			s.False(cell.Revealed)
			continue
		}
		s.True(cell.Revealed, "cell %d should be open", i)
	}
	s.Equal(1, next.Cells[9].AdjacentCount)
	s.Equal(1, next.Cells[13].AdjacentCount)
	s.Equal(model.MinefieldWon, next.Status)
}

func (s *EngineSuite) TestWonExactlyWhenOnlyMinesHidden() {
	field := layout(
		"*.*",
		"...",
	)

	next, _ := Reveal(field, 1)
	s.Equal(model.MinefieldPlaying, next.Status)
	s.Equal(5, next.HiddenCount())

	for _, i := range []int{3, 4} {
		next, _ = Reveal(next, i)
		s.Equal(model.MinefieldPlaying, next.Status)
	}

	next, outcome := Reveal(next, 5)
	s.True(outcome.Applied)
	s.Equal(next.MineCount, next.HiddenCount())
	s.Equal(model.MinefieldWon, next.Status)
}

func (s *EngineSuite) TestRevealIsCopyOnWrite() {
	field := layout(
		"..",
		".*",
	)

	next, _ := Reveal(field, 0)

	s.True(next.Cells[0].Revealed)
	s.False(field.Cells[0].Revealed)
	s.Equal(model.MinefieldPlaying, field.Status)
}

func (s *EngineSuite) TestRevealRejected() {
	field := layout(
		"*.",
		"..",
	)
	flagged, _ := ToggleFlag(field, 1)
	opened, _ := Reveal(field, 3)

	cases := []struct {
		name  string
		field *model.Minefield
		index int
	}{
		{"negative index", field, -1},
		{"index past end", field, 4},
		{"flagged cell", flagged, 1},
		{"already revealed", opened, 3},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			next, outcome := Reveal(tc.field, tc.index)
			s.False(outcome.Applied)
			s.Empty(outcome.Opened)
			s.Same(tc.field, next)
		})
	}
}

func (s *EngineSuite) TestTerminalBoardsAreAbsorbing() {
	field := layout(
		"*.",
		"..",
	)
	lost, _ := Reveal(field, 0)
	s.Require().Equal(model.MinefieldLost, lost.Status)

	next, outcome := Reveal(lost, 1)
	s.False(outcome.Applied)
	s.Same(lost, next)

	next, outcome = ToggleFlag(lost, 2)
	s.False(outcome.Applied)
	s.Same(lost, next)
}

func (s *EngineSuite) TestGenerateThenRevealSafeCornerCascades() {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(20, 21, 22, 23, 24)

	field, err := Generate(5, 5, 5, rnd)
	s.Require().NoError(err)
	s.Equal(5, countMines(field))

	next, outcome := Reveal(field, 0)
	s.True(outcome.Applied)
	s.Zero(next.Cells[0].AdjacentCount)
	for _, n := range Neighbors(5, 5, 0) {
		s.True(next.Cells[n].Revealed)
	}
	s.Equal(model.MinefieldWon, next.Status)
}

// ToggleFlag tests

func (s *EngineSuite) TestToggleFlag() {
	field := layout("*.")

	flagged, outcome := ToggleFlag(field, 0)
	s.True(outcome.Applied)
	s.True(flagged.Cells[0].Flagged)
	s.False(field.Cells[0].Flagged)
	s.Equal(model.MinefieldPlaying, flagged.Status)

	unflagged, outcome := ToggleFlag(flagged, 0)
	s.True(outcome.Applied)
	s.False(unflagged.Cells[0].Flagged)
}

func (s *EngineSuite) TestToggleFlagOnRevealedCellIsNoop() {
	field := layout("*..")
	opened, _ := Reveal(field, 1)

	next, outcome := ToggleFlag(opened, 1)
	s.False(outcome.Applied)
	s.Same(opened, next)
}

func (s *EngineSuite) TestToggleFlagInvalidIndexIsNoop() {
	field := layout("*.")
	next, outcome := ToggleFlag(field, 2)
	s.False(outcome.Applied)
	s.Same(field, next)
}

// Display tests

func (s *EngineSuite) TestDisplay() {
	field := layout(
		"*.",
		"..",
	)
	field.Cells[1].Flagged = true
	field.Cells[3].Revealed = true
	field.Cells[3].AdjacentCount = 1

	s.Equal([]string{"", "!", "", "1"}, Display(field))

	lost, _ := Reveal(field, 0)
	s.Equal("X", CellDisplay(lost.Cells[0]))
}

// Preset tests

func (s *EngineSuite) TestPresetByName() {
	p, err := PresetByName("Medium")
	s.Require().NoError(err)
	s.Equal(20, p.Width)
	s.Equal(15, p.Height)
	s.Equal(60, p.MineCount)

	_, err = PresetByName("impossible")
	s.ErrorIs(err, model.ErrUnknownPreset)
}

func (s *EngineSuite) TestPresetsAreValidAndCopied() {
	list := Presets()
	s.Len(list, 4)
	for _, p := range list {
		s.Less(p.MineCount, p.Width*p.Height, p.Name)
	}

	list[0].MineCount = 0
	s.Equal(5, Presets()[0].MineCount)
}

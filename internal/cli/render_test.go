package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/puzzlebox/internal/api/response"
)

func TestRenderMinefield(t *testing.T) {
	field := response.Minefield{
		ID:     "FIELD1",
		Width:  3,
		Height: 2,
		Mines:  1,
		Flags:  1,
		Status: "playing",
		Cells:  []string{"", "1", "!", "0", "2", "X"},
	}

	text := RenderMinefield(field)
	assert.Contains(t, text, "  0  . 1 F")
	assert.Contains(t, text, "  1    2 *")
	assert.Contains(t, text, "FIELD1")
	assert.Contains(t, text, "1/1")
	assert.Contains(t, text, "PLAYING")
}

func TestRenderMinefieldShowsMinesWhenOver(t *testing.T) {
	field := response.Minefield{
		Width:     2,
		Height:    1,
		Status:    "won",
		Cells:     []string{"", "1"},
		MineCells: []int{0},
	}

	text := RenderMinefield(field)
	assert.Contains(t, text, "  0  * 1")
	assert.Contains(t, text, "WON")
}

func TestRenderPuzzle(t *testing.T) {
	puzzle := response.Puzzle{
		Index:  0,
		Status: "in_progress",
		Cells: []response.PuzzleCell{
			{Char: "B", IsLetter: true, Entered: "A"},
			{Char: "C", IsLetter: true},
			{Char: " "},
			{Char: "C", IsLetter: true},
			{Char: "B", IsLetter: true, Entered: "A"},
		},
	}

	text := RenderPuzzle(puzzle)
	assert.Contains(t, text, "BC CB")
	assert.Contains(t, text, "A_ _A")
	assert.Contains(t, text, "IN PROGRESS")
	assert.NotContains(t, text, "\"")
}

func TestRenderSolvedPuzzleQuotesPhrase(t *testing.T) {
	puzzle := response.Puzzle{
		Status:   "solved",
		Author:   "Gopher",
		Revealed: "Go, go!",
		Cells:    []response.PuzzleCell{{Char: "H", IsLetter: true, Entered: "G"}},
	}

	assert.Contains(t, RenderPuzzle(puzzle), "\"Go, go!\" - Gopher")
}

func TestWrapCells(t *testing.T) {
	var cells []response.PuzzleCell
	for _, r := range "one two three" {
		cells = append(cells, response.PuzzleCell{Char: string(r)})
	}

	lines := wrapCells(cells, 8)
	require.Len(t, lines, 2)
	assert.Equal(t, "one two", joinChars(lines[0]))
	assert.Equal(t, "three", joinChars(lines[1]))

	assert.Len(t, wrapCells(cells, 40), 1)
}

func joinChars(cells []response.PuzzleCell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.Char)
	}
	return b.String()
}

func TestRenderTicTacToe(t *testing.T) {
	game := response.TicTacToe{
		ID:          "GAME1",
		Width:       3,
		Squares:     []string{"X", "X", "X", "O", "O", "", "", "", ""},
		Status:      "won",
		Winner:      "X",
		WinningLine: []int{0, 1, 2},
		Step:        5,
		Moves:       []int{0, 3, 1, 4, 2},
	}

	text := RenderTicTacToe(game)
	assert.Contains(t, text, "X | X | X")
	assert.Contains(t, text, "O | O | 5")
	assert.Contains(t, text, "X wins")
	assert.Contains(t, text, "5/5")
}

func TestOutputJSONSkipsNotice(t *testing.T) {
	var buf bytes.Buffer
	o := NewOutput(OutputJSON, &buf)

	o.Notice("Nothing changed")
	o.Print(response.Catalog{Count: 2})

	assert.JSONEq(t, `{"count":2,"current":0}`, buf.String())
}

func TestOutputTextFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	NewOutput(OutputText, &buf).Print(map[string]int{"n": 1})
	assert.JSONEq(t, `{"n":1}`, buf.String())
}

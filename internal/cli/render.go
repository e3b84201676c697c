package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/puzzlebox/internal/api/response"
)

// puzzleLineWidth is where cryptogram text wraps, at the nearest word break
const puzzleLineWidth = 32

var (
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("248")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	wonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lostStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	numStyles   = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
)

// RenderMinefield draws the board with row and column numbers. Once the game
// is over, unrevealed mines are shown too.
func RenderMinefield(m response.Minefield) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(columnHeader(m.Width)))
	for row := range m.Height {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("%3d ", row)))
		for col := range m.Width {
			i := row*m.Width + col
			b.WriteString(" " + mineGlyph(m.Cells[i], slices.Contains(m.MineCells, i)))
		}
	}

	status := fmt.Sprintf("%s %s  %s %d/%d",
		labelStyle.Render("ID"), m.ID,
		labelStyle.Render("Flags"), m.Flags, m.Mines)
	return lipgloss.JoinVertical(lipgloss.Left,
		boardStyle.Render(b.String()),
		status+"  "+statusText(m.Status),
	)
}

func columnHeader(width int) string {
	var b strings.Builder
	b.WriteString("    ")
	for col := range width {
		b.WriteString(fmt.Sprintf(" %d", col%10))
	}
	return b.String()
}

func mineGlyph(display string, mine bool) string {
	switch {
	case display == "X":
		return mineStyle.Render("*")
	case display == "!":
		return flagStyle.Render("F")
	case display == "" && mine:
		return mineStyle.Render("*")
	case display == "":
		return hiddenStyle.Render(".")
	case display == "0":
		return " "
	}
	var n int
	if _, err := fmt.Sscanf(display, "%d", &n); err == nil && n >= 1 && n <= len(numStyles) {
		return numStyles[n-1].Render(display)
	}
	return display
}

// RenderPuzzle draws the cipher letters with the player's guesses underneath
func RenderPuzzle(p response.Puzzle) string {
	var blocks []string
	for _, line := range wrapCells(p.Cells, puzzleLineWidth) {
		var cipher, guess strings.Builder
		for _, c := range line {
			if !c.IsLetter {
				cipher.WriteString(c.Char)
				guess.WriteString(c.Char)
				continue
			}
			cipher.WriteString(headerStyle.Render(c.Char))
			switch {
			case c.Hinted:
				guess.WriteString(hintStyle.Render(c.Entered))
			case c.Entered != "":
				guess.WriteString(c.Entered)
			default:
				guess.WriteString("_")
			}
		}
		blocks = append(blocks, cipher.String(), guess.String(), "")
	}

	footer := fmt.Sprintf("%s %d  %s %d  %s",
		labelStyle.Render("Puzzle"), p.Index,
		labelStyle.Render("Hints"), p.HintCount,
		statusText(p.Status))
	if p.Revealed != "" {
		footer += "\n\"" + p.Revealed + "\" - " + p.Author
	}
	return lipgloss.JoinVertical(lipgloss.Left, boardStyle.Render(strings.Join(blocks[:len(blocks)-1], "\n")), footer)
}

// wrapCells splits the phrase into lines of at most width cells, breaking
// after spaces. A single word longer than width gets a line to itself.
func wrapCells(cells []response.PuzzleCell, width int) [][]response.PuzzleCell {
	var lines [][]response.PuzzleCell
	start, lastBreak := 0, -1
	for i, c := range cells {
		if c.Char == " " {
			lastBreak = i
		}
		if i-start+1 > width && lastBreak > start {
			lines = append(lines, cells[start:lastBreak])
			start = lastBreak + 1
		}
	}
	if start < len(cells) {
		lines = append(lines, cells[start:])
	}
	return lines
}

// RenderTicTacToe draws the position being viewed
func RenderTicTacToe(g response.TicTacToe) string {
	winning := make(map[int]bool, len(g.WinningLine))
	for _, i := range g.WinningLine {
		winning[i] = true
	}

	pad := len(fmt.Sprint(len(g.Squares) - 1))
	rows := make([]string, g.Width)
	for row := range g.Width {
		cells := make([]string, g.Width)
		for col := range g.Width {
			i := row*g.Width + col
			switch mark := fmt.Sprintf("%*s", pad, g.Squares[i]); {
			case g.Squares[i] == "":
				cells[col] = hiddenStyle.Render(fmt.Sprintf("%*d", pad, i))
			case winning[i]:
				cells[col] = wonStyle.Render(mark)
			default:
				cells[col] = mark
			}
		}
		rows[row] = strings.Join(cells, " | ")
	}

	status := fmt.Sprintf("%s %s  %s %d/%d  ", labelStyle.Render("ID"), g.ID, labelStyle.Render("Step"), g.Step, len(g.Moves))
	switch {
	case g.Winner != "":
		status += wonStyle.Render(g.Winner + " wins")
	case g.Status == "draw":
		status += "Draw"
	default:
		status += "Next: " + g.NextMark
	}
	return lipgloss.JoinVertical(lipgloss.Left, boardStyle.Render(strings.Join(rows, "\n")), status)
}

func statusText(status string) string {
	switch status {
	case "won", "solved":
		return wonStyle.Render(strings.ToUpper(status))
	case "lost":
		return lostStyle.Render("LOST")
	default:
		return strings.ToUpper(strings.ReplaceAll(status, "_", " "))
	}
}

package response

import (
	"time"

	"github.com/mcoot/puzzlebox/internal/model"
	"github.com/mcoot/puzzlebox/internal/services/auth"
	"github.com/mcoot/puzzlebox/internal/services/cryptogram"
	"github.com/mcoot/puzzlebox/internal/services/minefield"
	"github.com/mcoot/puzzlebox/internal/services/tictactoe"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player    `json:"player"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// Preset is a named minefield configuration
type Preset struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mines  int    `json:"mines"`
}

// PresetsFromModel converts the preset list
func PresetsFromModel(presets []model.MinefieldPreset) []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = Preset{Name: p.Name, Width: p.Width, Height: p.Height, Mines: p.MineCount}
	}
	return out
}

// Minefield is the player's view of a board. Mine positions are only
// disclosed once the game is over.
type Minefield struct {
	ID         string     `json:"id"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Mines      int        `json:"mines"`
	Flags      int        `json:"flags"`
	Status     string     `json:"status"`
	Cells      []string   `json:"cells"`
	MineCells  []int      `json:"mine_cells,omitempty"`
	Applied    bool       `json:"applied"`
	Opened     []int      `json:"opened,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// MinefieldFromModel builds the masked board view. applied is true for newly
// created boards and for mutations that changed state.
func MinefieldFromModel(f *model.Minefield, outcome minefield.Outcome) Minefield {
	view := Minefield{
		ID:        string(f.ID),
		Width:     f.Width,
		Height:    f.Height,
		Mines:     f.MineCount,
		Flags:     f.FlagCount(),
		Status:    string(f.Status),
		Cells:     minefield.Display(f),
		Applied:   outcome.Applied,
		Opened:    outcome.Opened,
		CreatedAt: f.CreatedAt,
	}
	if f.IsFinished() {
		for i, c := range f.Cells {
			if c.HasMine {
				view.MineCells = append(view.MineCells, i)
			}
		}
		finishedAt := f.FinishedAt
		view.FinishedAt = &finishedAt
	}
	return view
}

// Catalog summarises the cryptogram list for a player
type Catalog struct {
	Count   int `json:"count"`
	Current int `json:"current"`
}

// CatalogFromService converts a cryptogram.Catalog
func CatalogFromService(c cryptogram.Catalog) Catalog {
	return Catalog{Count: c.Count, Current: c.Current}
}

// PuzzleCell is one position of the phrase. Letter cells show their
// substitution, other characters are shown as-is.
type PuzzleCell struct {
	Char     string `json:"char"`
	IsLetter bool   `json:"is_letter"`
	Entered  string `json:"entered,omitempty"`
	Hinted   bool   `json:"hinted,omitempty"`
}

// Puzzle is the player's view of a cryptogram
type Puzzle struct {
	Index     int          `json:"index"`
	Author    string       `json:"author"`
	Status    string       `json:"status"`
	Cells     []PuzzleCell `json:"cells"`
	Hints     string       `json:"hints"`
	HintCount int          `json:"hint_count"`
	Applied   bool         `json:"applied"`
	NextFocus *int         `json:"next_focus,omitempty"`
	Revealed  string       `json:"revealed,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// PuzzleFromModel builds the cryptogram view. The plain text is only included
// once the puzzle is solved.
func PuzzleFromModel(p *model.Puzzle) Puzzle {
	cells := cryptogram.Cells(p)
	view := Puzzle{
		Index:     p.Index,
		Author:    p.Phrase.Author,
		Status:    string(p.Status),
		Cells:     make([]PuzzleCell, len(cells)),
		Hints:     p.Hints.String(),
		HintCount: p.Hints.Len(),
		UpdatedAt: p.UpdatedAt,
	}
	for i, c := range cells {
		cell := PuzzleCell{Char: string(c.Char), IsLetter: c.IsLetter, Hinted: c.Hinted}
		if c.Entered != 0 {
			cell.Entered = string(c.Entered)
		}
		view.Cells[i] = cell
	}
	if p.IsSolved() {
		view.Revealed = p.Phrase.Text
	}
	return view
}

// PuzzleAfterLetter builds the view returned from a letter entry
func PuzzleAfterLetter(p *model.Puzzle, outcome cryptogram.LetterOutcome) Puzzle {
	view := PuzzleFromModel(p)
	view.Applied = outcome.Applied
	if outcome.NextFocus != cryptogram.NoFocus {
		next := outcome.NextFocus
		view.NextFocus = &next
	}
	return view
}

// HintResponse is returned from a hint request
type HintResponse struct {
	Puzzle Puzzle `json:"puzzle"`
	Letter string `json:"letter,omitempty"`
}

// HintResponseFromModel builds the hint view
func HintResponseFromModel(p *model.Puzzle, outcome cryptogram.HintOutcome) HintResponse {
	resp := HintResponse{Puzzle: PuzzleFromModel(p)}
	resp.Puzzle.Applied = outcome.Applied
	if outcome.Applied {
		resp.Letter = string(outcome.Letter)
	}
	return resp
}

// TicTacToe is the state of a tic-tac-toe game at the step being viewed
type TicTacToe struct {
	ID          string   `json:"id"`
	Width       int      `json:"width"`
	Squares     []string `json:"squares"`
	Status      string   `json:"status"`
	Winner      string   `json:"winner,omitempty"`
	WinningLine []int    `json:"winning_line,omitempty"`
	NextMark    string   `json:"next_mark,omitempty"`
	Step        int      `json:"step"`
	Moves       []int    `json:"moves"`
	Applied     bool     `json:"applied"`
}

// TicTacToeFromModel converts a game to its view. Moves lists the square
// played at each step after the opening position.
func TicTacToeFromModel(g *model.TicTacToe, outcome tictactoe.Outcome) TicTacToe {
	current := g.Current()
	view := TicTacToe{
		ID:      string(g.ID),
		Width:   g.Width,
		Squares: make([]string, len(current.Squares)),
		Status:  string(tictactoe.Status(g)),
		Step:    g.StepNumber,
		Moves:   make([]int, 0, len(g.History)-1),
		Applied: outcome.Applied,
	}
	for i, m := range current.Squares {
		view.Squares[i] = string(m)
	}
	for _, step := range g.History[1:] {
		view.Moves = append(view.Moves, step.LastMove)
	}
	if mark, line := tictactoe.Winner(current.Squares, g.Width); mark != model.MarkNone {
		view.Winner = string(mark)
		view.WinningLine = line
	} else if view.Status == string(model.TicTacToePlaying) {
		view.NextMark = string(tictactoe.NextMark(g.StepNumber))
	}
	return view
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/puzzlebox/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
		return
	}
	o.printText(data)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		o.printJSON(map[string]string{"message": msg})
		return
	}
	fmt.Fprintln(o.w, msg)
}

// Notice prints a remark for people; JSON output omits it
func (o *Output) Notice(msg string) {
	if o.format != OutputJSON {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Player:
		o.printPlayer(v)
	case response.AuthResponse:
		o.printPlayer(v.Player)
		fmt.Fprintf(o.w, "Token: %s\n", v.SessionToken)
	case []response.Preset:
		for _, p := range v {
			fmt.Fprintf(o.w, "%-8s %dx%d, %d mines\n", p.Name, p.Width, p.Height, p.Mines)
		}
	case response.Minefield:
		fmt.Fprintln(o.w, RenderMinefield(v))
	case response.Catalog:
		fmt.Fprintf(o.w, "Cryptograms: %d\nCurrent: %d\n", v.Count, v.Current)
	case response.Puzzle:
		fmt.Fprintln(o.w, RenderPuzzle(v))
	case response.HintResponse:
		if v.Letter != "" {
			fmt.Fprintf(o.w, "Revealed %s\n", v.Letter)
		} else {
			fmt.Fprintln(o.w, "No hint available")
		}
		fmt.Fprintln(o.w, RenderPuzzle(v.Puzzle))
	case response.TicTacToe:
		fmt.Fprintln(o.w, RenderTicTacToe(v))
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printPlayer(p response.Player) {
	guest := "no"
	if p.IsGuest {
		guest = "yes"
	}
	fmt.Fprintf(o.w, "Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Fprintf(o.w, "Guest: %s\n", guest)
}

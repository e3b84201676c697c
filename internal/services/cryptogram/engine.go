package cryptogram

import (
	"fmt"
	"unicode"

	"github.com/mcoot/puzzlebox/internal/dependencies/random"
	"github.com/mcoot/puzzlebox/internal/model"
)

// NoFocus is reported when there is no empty cell left to move to
const NoFocus = -1

// LetterOutcome describes the result of entering a letter
type LetterOutcome struct {
	Applied bool
	Solved  bool
	// NextFocus is the phrase position the input should move to, or NoFocus
	NextFocus int
}

// HintOutcome describes the result of a hint request
type HintOutcome struct {
	Applied bool
	Solved  bool
	// Letter is the substituted letter that was revealed
	Letter rune
}

// Cell is the player's view of one position in the phrase. Letters are shown
// by their substitution so the plain text is never exposed.
type Cell struct {
	Char     rune // substituted letter, or the literal character for punctuation and spaces
	IsLetter bool
	Entered  rune // 0 when empty
	Hinted   bool
}

// LettersInUse returns the letters appearing in text, case-insensitively
func LettersInUse(text string) model.LetterSet {
	return model.NewLetterSet(text)
}

// GenerateCipher shuffles the alphabet with Sattolo's algorithm. The result is a
// single 26-cycle, so no letter ever maps to itself. The goal is the inverse of
// the cipher restricted to lettersInUse.
func GenerateCipher(lettersInUse model.LetterSet, rnd random.Random) (cipher, goal model.LetterMap) {
	for i := range cipher {
		cipher[i] = model.LetterAt(i)
	}
	for i := model.AlphabetSize - 1; i > 0; i-- {
		j := rnd.Intn(i)
		cipher[i], cipher[j] = cipher[j], cipher[i]
	}

	for _, plain := range lettersInUse.Letters() {
		goal.Set(cipher.Get(plain), plain)
	}
	return cipher, goal
}

// CheckSolved reports whether attempt matches goal everywhere goal is defined.
// Attempt entries outside the goal are ignored.
func CheckSolved(goal, attempt model.LetterMap) bool {
	for i, want := range goal {
		if want != 0 && attempt[i] != want {
			return false
		}
	}
	return true
}

// NewPuzzle builds a fresh puzzle for a phrase
func NewPuzzle(phrase model.Phrase, index int, rnd random.Random) (*model.Puzzle, error) {
	inUse := LettersInUse(phrase.Text)
	if inUse.Len() == 0 {
		return nil, fmt.Errorf("%w: phrase %d", model.ErrInvalidPhrase, index)
	}

	cipher, goal := GenerateCipher(inUse, rnd)
	return &model.Puzzle{
		Index:  index,
		Phrase: phrase,
		Cipher: cipher,
		Goal:   goal,
		Status: model.PuzzleInProgress,
	}, nil
}

// FromRecord rehydrates a stored puzzle. The record must belong to the phrase:
// its goal has to invert its cipher over exactly the phrase's letters.
func FromRecord(phrase model.Phrase, index int, record *model.PuzzleRecord) (*model.Puzzle, error) {
	inUse := LettersInUse(phrase.Text)
	if inUse.Len() == 0 {
		return nil, fmt.Errorf("%w: phrase %d", model.ErrInvalidPhrase, index)
	}
	if err := validateRecord(inUse, record); err != nil {
		return nil, fmt.Errorf("%w: phrase %d: %s", model.ErrInvalidRecord, index, err)
	}

	p := &model.Puzzle{
		Index:        index,
		Phrase:       phrase,
		Cipher:       record.Cipher,
		Goal:         record.Goal,
		SolveAttempt: record.SolveAttempt,
		Hints:        record.Hints,
		Status:       model.PuzzleInProgress,
		UpdatedAt:    record.UpdatedAt,
	}
	if CheckSolved(p.Goal, p.SolveAttempt) {
		p.Status = model.PuzzleSolved
	}
	return p, nil
}

func validateRecord(inUse model.LetterSet, record *model.PuzzleRecord) error {
	if record.Goal.Defined().Len() != inUse.Len() {
		return fmt.Errorf("goal covers %d letters, phrase uses %d", record.Goal.Defined().Len(), inUse.Len())
	}
	for _, plain := range inUse.Letters() {
		sub := record.Cipher.Get(plain)
		if sub == 0 || sub == plain {
			return fmt.Errorf("cipher has no substitution for %c", plain)
		}
		if record.Goal.Get(sub) != plain {
			return fmt.Errorf("goal does not invert cipher at %c", plain)
		}
	}
	if !record.Goal.Defined().ContainsAll(record.Hints) {
		return fmt.Errorf("hints %s outside goal", record.Hints)
	}
	return nil
}

// ApplyLetter records the player's guess for a substituted letter. Entering 0
// clears the guess. Solved puzzles, hinted letters, letters outside the puzzle
// and non-letter input are ignored. from is the phrase position being edited
// and seeds the search for the next empty cell.
func ApplyLetter(p *model.Puzzle, substituted, entered rune, from int) (*model.Puzzle, LetterOutcome) {
	ignored := LetterOutcome{NextFocus: NoFocus}
	if p.IsSolved() || p.Goal.Get(substituted) == 0 || p.Hints.Has(substituted) {
		return p, ignored
	}
	if entered != 0 {
		if _, ok := model.LetterIndex(entered); !ok {
			return p, ignored
		}
		entered = unicode.ToUpper(entered)
	}

	next := p.Clone()
	next.SolveAttempt.Set(substituted, entered)

	if CheckSolved(next.Goal, next.SolveAttempt) {
		next.Status = model.PuzzleSolved
		return next, LetterOutcome{Applied: true, Solved: true, NextFocus: NoFocus}
	}
	return next, LetterOutcome{Applied: true, NextFocus: NextEmpty(next, from)}
}

// NextEmpty scans the phrase circularly forward from position from and returns
// the first letter position whose substitution has no guess yet. from itself is
// checked last. Returns NoFocus if every letter is filled.
func NextEmpty(p *model.Puzzle, from int) int {
	text := []rune(p.Phrase.Text)
	n := len(text)
	if from < 0 || from >= n {
		from = -1
	}
	for step := 1; step <= n; step++ {
		pos := (from + step) % n
		if _, ok := model.LetterIndex(text[pos]); !ok {
			continue
		}
		if p.SolveAttempt.Get(p.Cipher.Get(text[pos])) == 0 {
			return pos
		}
	}
	return NoFocus
}

// GetHint reveals one substituted letter. Letters guessed wrongly are preferred
// over empty ones; within a group the pick is uniform.
func GetHint(p *model.Puzzle, rnd random.Random) (*model.Puzzle, HintOutcome) {
	if p.IsSolved() {
		return p, HintOutcome{}
	}

	var incorrect, empty []rune
	for _, sub := range p.Goal.Defined().Letters() {
		if p.Hints.Has(sub) {
			continue
		}
		switch guess := p.SolveAttempt.Get(sub); {
		case guess == 0:
			empty = append(empty, sub)
		case guess != p.Goal.Get(sub):
			incorrect = append(incorrect, sub)
		}
	}

	candidates := incorrect
	if len(candidates) == 0 {
		candidates = empty
	}
	if len(candidates) == 0 {
		return p, HintOutcome{}
	}
	letter := candidates[rnd.Intn(len(candidates))]

	next := p.Clone()
	next.SolveAttempt.Set(letter, next.Goal.Get(letter))
	next.Hints = next.Hints.Add(letter)
	if CheckSolved(next.Goal, next.SolveAttempt) {
		next.Status = model.PuzzleSolved
	}
	return next, HintOutcome{Applied: true, Solved: next.IsSolved(), Letter: letter}
}

// Cells returns the player's view of every position in the phrase
func Cells(p *model.Puzzle) []Cell {
	text := []rune(p.Phrase.Text)
	cells := make([]Cell, len(text))
	for i, r := range text {
		if _, ok := model.LetterIndex(r); !ok {
			cells[i] = Cell{Char: r}
			continue
		}
		sub := p.Cipher.Get(r)
		cells[i] = Cell{
			Char:     sub,
			IsLetter: true,
			Entered:  p.SolveAttempt.Get(sub),
			Hinted:   p.Hints.Has(sub),
		}
	}
	return cells
}

// Ciphertext returns the phrase with every letter replaced by its substitution
func Ciphertext(p *model.Puzzle) string {
	cells := Cells(p)
	out := make([]rune, len(cells))
	for i, c := range cells {
		out[i] = c.Char
	}
	return string(out)
}

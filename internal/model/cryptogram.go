package model

import (
	"fmt"
	"strings"
	"time"
)

// AlphabetSize is the number of letters a cipher permutes
const AlphabetSize = 26

// emptyLetter marks an unset entry in the text form of a LetterMap
const emptyLetter = '-'

// LetterIndex returns the 0-based alphabet offset of an ASCII letter in either case
func LetterIndex(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	default:
		return 0, false
	}
}

// LetterAt returns the uppercase letter at the given alphabet offset
func LetterAt(i int) rune {
	return rune('A' + i)
}

// LetterMap maps each letter of the alphabet to another letter. Zero means unset.
type LetterMap [AlphabetSize]rune

// Get returns the mapped value for a letter, or 0 if unset or not a letter
func (m LetterMap) Get(letter rune) rune {
	i, ok := LetterIndex(letter)
	if !ok {
		return 0
	}
	return m[i]
}

// Set stores the mapping for a letter; non-letters are ignored
func (m *LetterMap) Set(letter, value rune) {
	if i, ok := LetterIndex(letter); ok {
		m[i] = value
	}
}

// Defined returns the set of letters that have a mapping
func (m LetterMap) Defined() LetterSet {
	var s LetterSet
	for i, v := range m {
		if v != 0 {
			s = s.Add(LetterAt(i))
		}
	}
	return s
}

// MarshalText encodes the map as 26 characters, '-' for unset entries
func (m LetterMap) MarshalText() ([]byte, error) {
	b := make([]byte, AlphabetSize)
	for i, v := range m {
		if v == 0 {
			b[i] = emptyLetter
		} else {
			b[i] = byte(v)
		}
	}
	return b, nil
}

// UnmarshalText decodes the format produced by MarshalText
func (m *LetterMap) UnmarshalText(text []byte) error {
	if len(text) != AlphabetSize {
		return fmt.Errorf("letter map must have %d entries, got %d", AlphabetSize, len(text))
	}
	var out LetterMap
	for i, c := range text {
		if c == emptyLetter {
			continue
		}
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("invalid letter %q at position %d", c, i)
		}
		out[i] = rune(c)
	}
	*m = out
	return nil
}

// LetterSet is a set of letters A-Z stored as a bitmask
type LetterSet uint32

// NewLetterSet builds a set from the letters in s; other characters are ignored
func NewLetterSet(s string) LetterSet {
	var set LetterSet
	for _, r := range s {
		set = set.Add(r)
	}
	return set
}

// Add returns the set with the letter included
func (s LetterSet) Add(letter rune) LetterSet {
	i, ok := LetterIndex(letter)
	if !ok {
		return s
	}
	return s | 1<<i
}

// Has reports whether the letter is in the set
func (s LetterSet) Has(letter rune) bool {
	i, ok := LetterIndex(letter)
	return ok && s&(1<<i) != 0
}

// Len returns the number of letters in the set
func (s LetterSet) Len() int {
	n := 0
	for i := 0; i < AlphabetSize; i++ {
		if s&(1<<i) != 0 {
			n++
		}
	}
	return n
}

// Letters returns the members in alphabetical order
func (s LetterSet) Letters() []rune {
	var out []rune
	for i := 0; i < AlphabetSize; i++ {
		if s&(1<<i) != 0 {
			out = append(out, LetterAt(i))
		}
	}
	return out
}

// ContainsAll reports whether every letter of other is in s
func (s LetterSet) ContainsAll(other LetterSet) bool {
	return s&other == other
}

func (s LetterSet) String() string {
	return string(s.Letters())
}

// MarshalText encodes the set as its sorted letters
func (s LetterSet) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a string of letters
func (s *LetterSet) UnmarshalText(text []byte) error {
	for _, c := range text {
		if _, ok := LetterIndex(rune(c)); !ok {
			return fmt.Errorf("invalid letter %q in set", c)
		}
	}
	*s = NewLetterSet(strings.ToUpper(string(text)))
	return nil
}

// Phrase is a quotation used as a cryptogram source
type Phrase struct {
	Text   string `json:"text" yaml:"text"`
	Author string `json:"author" yaml:"author"`
}

// PuzzleStatus represents the current phase of a cryptogram
type PuzzleStatus string

const (
	PuzzleInProgress PuzzleStatus = "in_progress"
	PuzzleSolved     PuzzleStatus = "solved"
)

// Puzzle is a player's attempt at decoding one phrase
type Puzzle struct {
	PlayerID PlayerID
	Index    int // Position of the phrase in the catalog
	Phrase   Phrase

	Cipher       LetterMap // plain -> substituted
	Goal         LetterMap // substituted -> plain, only for letters in the phrase
	SolveAttempt LetterMap // substituted -> entered
	Hints        LetterSet // substituted letters revealed by hints

	Status    PuzzleStatus
	UpdatedAt time.Time
}

// IsSolved returns true once the attempt matches the goal
func (p *Puzzle) IsSolved() bool {
	return p.Status == PuzzleSolved
}

// Clone returns a copy of the puzzle; all fields are values so a shallow copy suffices
func (p *Puzzle) Clone() *Puzzle {
	clone := *p
	return &clone
}

// Record returns the persisted form of the puzzle
func (p *Puzzle) Record() *PuzzleRecord {
	return &PuzzleRecord{
		Cipher:       p.Cipher,
		Goal:         p.Goal,
		SolveAttempt: p.SolveAttempt,
		Hints:        p.Hints,
		Finished:     p.IsSolved(),
		UpdatedAt:    p.UpdatedAt,
	}
}

// PuzzleRecord is the storage layout for a puzzle's progress
type PuzzleRecord struct {
	Cipher       LetterMap `json:"cipher"`
	Goal         LetterMap `json:"goal"`
	SolveAttempt LetterMap `json:"solve_attempt"`
	Hints        LetterSet `json:"hints"`
	Finished     bool      `json:"finished"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Package guess defines guess feedback rows and the append-only ledger.
package guess

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Outcome is the feedback given for a single guessed letter.
type Outcome uint8

const (
	// Absent means the letter has no further occurrence in the target.
	Absent Outcome = iota
	// Present means the letter occurs in the target at another position.
	Present
	// Correct means the letter occupies this exact position.
	Correct
)

var (
	// ErrRowLength reports a row whose length differs from the word length.
	ErrRowLength = errors.New("row length does not match word length")
	// ErrInvalidLetter reports a row position that does not hold a letter.
	ErrInvalidLetter = errors.New("row contains a non-letter")
	// ErrInvalidOutcome reports an outcome outside the three known values.
	ErrInvalidOutcome = errors.New("row contains an unknown outcome")
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Mark returns the single-character notation for the outcome.
func (o Outcome) Mark() byte {
	switch o {
	case Present:
		return 'y'
	case Correct:
		return 'g'
	default:
		return 'x'
	}
}

func (o Outcome) valid() bool {
	return o <= Correct
}

// ParseMark maps a notation character to its outcome.
func ParseMark(ch rune) (Outcome, bool) {
	switch unicode.ToLower(ch) {
	case 'g', '+':
		return Correct, true
	case 'y', '?':
		return Present, true
	case 'x', 'b', '.', '-':
		return Absent, true
	default:
		return Absent, false
	}
}

// Letter pairs a guessed letter with its outcome.
type Letter struct {
	Char    rune
	Outcome Outcome
}

// Row is one submitted guess, one Letter per position.
type Row []Letter

// NewRow builds a row from a word with every position marked Absent.
func NewRow(word string) Row {
	word = strings.ToUpper(word)
	row := make(Row, 0, utf8.RuneCountInString(word))
	for _, r := range word {
		row = append(row, Letter{Char: r})
	}
	return row
}

// ParseRow builds a row from a word and a marks string of equal length.
func ParseRow(word, marks string) (Row, error) {
	row := NewRow(strings.TrimSpace(word))
	markRunes := []rune(strings.TrimSpace(marks))
	if len(markRunes) != len(row) {
		return nil, fmt.Errorf("%d marks for %d letters: %w", len(markRunes), len(row), ErrRowLength)
	}
	for i, ch := range markRunes {
		outcome, ok := ParseMark(ch)
		if !ok {
			return nil, fmt.Errorf("mark %q at position %d: %w", ch, i, ErrInvalidOutcome)
		}
		row[i].Outcome = outcome
	}
	return row, nil
}

// ParseNotation parses the WORD=MARKS form used on the command line.
func ParseNotation(s string) (Row, error) {
	word, marks, ok := strings.Cut(s, "=")
	if !ok {
		word, marks, ok = strings.Cut(s, ":")
	}
	if !ok {
		return nil, fmt.Errorf("expected WORD=MARKS, got %q", s)
	}
	return ParseRow(word, marks)
}

// Validate checks the row against the configured word length.
func (r Row) Validate(width int) error {
	if len(r) != width {
		return fmt.Errorf("got %d letters, want %d: %w", len(r), width, ErrRowLength)
	}
	for i, l := range r {
		if !unicode.IsLetter(l.Char) {
			return fmt.Errorf("position %d (%q): %w", i, l.Char, ErrInvalidLetter)
		}
		if !l.Outcome.valid() {
			return fmt.Errorf("position %d: %w", i, ErrInvalidOutcome)
		}
	}
	return nil
}

// Word returns the guessed word.
func (r Row) Word() string {
	var b strings.Builder
	for _, l := range r {
		b.WriteRune(l.Char)
	}
	return b.String()
}

// Marks returns the outcome notation, one character per position.
func (r Row) Marks() string {
	out := make([]byte, len(r))
	for i, l := range r {
		out[i] = l.Outcome.Mark()
	}
	return string(out)
}

// String renders the row in WORD=MARKS form.
func (r Row) String() string {
	return r.Word() + "=" + r.Marks()
}

// Solved reports whether every position is Correct.
func (r Row) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, l := range r {
		if l.Outcome != Correct {
			return false
		}
	}
	return true
}

func (r Row) clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

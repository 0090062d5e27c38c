// Package wizard implements the three-step guess entry flow: type the
// word, mark the present letters, mark the correct letters, commit.
package wizard

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/hintle/internal/guess"
)

// Step is a state of the entry flow.
type Step uint8

const (
	EnteringWord Step = iota
	MarkingPresent
	MarkingCorrect
)

var (
	// ErrWordLength reports a typed word of the wrong length.
	ErrWordLength = errors.New("word has the wrong length")
	// ErrNotLetters reports a typed word with non-letter characters.
	ErrNotLetters = errors.New("word must contain only letters")
	// ErrWrongStep reports an action that the current step does not allow.
	ErrWrongStep = errors.New("action not allowed in this step")
	// ErrPosition reports a position outside the row.
	ErrPosition = errors.New("position out of range")
)

// String returns the step title shown to the user.
func (s Step) String() string {
	switch s {
	case EnteringWord:
		return "Enter your guess"
	case MarkingPresent:
		return "Select the yellow letters"
	case MarkingCorrect:
		return "Select the green letters"
	default:
		return fmt.Sprintf("step(%d)", uint8(s))
	}
}

// Outcome returns the outcome a toggle applies in this step.
func (s Step) Outcome() (guess.Outcome, bool) {
	switch s {
	case MarkingPresent:
		return guess.Present, true
	case MarkingCorrect:
		return guess.Correct, true
	default:
		return guess.Absent, false
	}
}

// Wizard holds the in-progress row for one guess.
type Wizard struct {
	width int
	step  Step
	word  string
	row   guess.Row
}

// New returns a wizard for words of the given length.
func New(width int) *Wizard {
	return &Wizard{width: width}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Width returns the expected word length.
func (w *Wizard) Width() int {
	return w.width
}

// Word returns the typed word, uppercased.
func (w *Wizard) Word() string {
	return w.word
}

// Row returns a copy of the row being marked. Every position is Absent
// until marked otherwise.
func (w *Wizard) Row() guess.Row {
	out := make(guess.Row, len(w.row))
	copy(out, w.row)
	return out
}

// SetWord replaces the typed word. Allowed only while entering the word.
func (w *Wizard) SetWord(word string) error {
	if w.step != EnteringWord {
		return fmt.Errorf("set word during %q: %w", w.step, ErrWrongStep)
	}
	w.word = strings.ToUpper(strings.TrimSpace(word))
	return nil
}

// Next advances one step. Leaving EnteringWord validates the word and
// starts a fresh row with every position Absent.
func (w *Wizard) Next() error {
	switch w.step {
	case EnteringWord:
		if err := w.validateWord(); err != nil {
			return err
		}
		w.row = guess.NewRow(w.word)
		w.step = MarkingPresent
	case MarkingPresent:
		w.step = MarkingCorrect
	default:
		return fmt.Errorf("next from %q: %w", w.step, ErrWrongStep)
	}
	return nil
}

// Back moves one step backward. Marks survive until the word is
// submitted again with Next.
func (w *Wizard) Back() error {
	switch w.step {
	case MarkingPresent:
		w.step = EnteringWord
	case MarkingCorrect:
		w.step = MarkingPresent
	default:
		return fmt.Errorf("back from %q: %w", w.step, ErrWrongStep)
	}
	return nil
}

// Toggle flips position i between Absent and the current step's outcome.
// A position holding the other outcome is switched to this one.
func (w *Wizard) Toggle(i int) error {
	outcome, ok := w.step.Outcome()
	if !ok {
		return fmt.Errorf("toggle during %q: %w", w.step, ErrWrongStep)
	}
	if i < 0 || i >= len(w.row) {
		return fmt.Errorf("toggle %d of %d: %w", i, len(w.row), ErrPosition)
	}
	if w.row[i].Outcome == outcome {
		w.row[i].Outcome = guess.Absent
	} else {
		w.row[i].Outcome = outcome
	}
	return nil
}

// Commit returns the finished row and restarts the flow for the next
// guess. Allowed only from MarkingCorrect.
func (w *Wizard) Commit() (guess.Row, error) {
	if w.step != MarkingCorrect {
		return nil, fmt.Errorf("commit during %q: %w", w.step, ErrWrongStep)
	}
	row := w.Row()
	w.Reset(w.width)
	return row, nil
}

// Reset discards the current entry and switches to a new word length.
func (w *Wizard) Reset(width int) {
	w.width = width
	w.step = EnteringWord
	w.word = ""
	w.row = nil
}

func (w *Wizard) validateWord() error {
	if n := utf8.RuneCountInString(w.word); n != w.width {
		return fmt.Errorf("%q has %d letters, want %d: %w", w.word, n, w.width, ErrWordLength)
	}
	for _, r := range w.word {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%q: %w", w.word, ErrNotLetters)
		}
	}
	return nil
}

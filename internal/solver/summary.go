package solver

import (
	"sort"
	"strings"

	"github.com/verte-zerg/hintle/internal/guess"
)

// LetterState is the best knowledge about one letter across the ledger.
type LetterState uint8

const (
	Unknown LetterState = iota
	Excluded
	Misplaced
	Placed
)

// Summary condenses the ledger into per-letter and per-position facts.
type Summary struct {
	// Known holds the letter fixed at each position, or 0.
	Known []rune
	// Letters maps every guessed letter to its best state.
	Letters map[rune]LetterState
}

// Summarize derives the letter knowledge carried by the ledger.
func Summarize(ledger *guess.Ledger) Summary {
	s := Summary{
		Known:   make([]rune, ledger.Width()),
		Letters: map[rune]LetterState{},
	}
	ledger.Each(func(row guess.Row) bool {
		for i, l := range row {
			state := Excluded
			switch l.Outcome {
			case guess.Correct:
				state = Placed
				if i < len(s.Known) {
					s.Known[i] = l.Char
				}
			case guess.Present:
				state = Misplaced
			}
			if state > s.Letters[l.Char] {
				s.Letters[l.Char] = state
			}
		}
		return true
	})
	return s
}

// State returns the state recorded for ch.
func (s Summary) State(ch rune) LetterState {
	return s.Letters[ch]
}

// Pattern renders the known positions, using '_' for open slots.
func (s Summary) Pattern() string {
	var b strings.Builder
	for _, r := range s.Known {
		if r == 0 {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// WithState returns the letters in the given state, sorted.
func (s Summary) WithState(state LetterState) []rune {
	var out []rune
	for r, st := range s.Letters {
		if st == state {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Package solver filters a corpus down to the words consistent with a
// ledger of guess feedback.
package solver

import (
	"github.com/verte-zerg/hintle/internal/guess"
	"github.com/verte-zerg/hintle/internal/wordlist"
)

// Candidates returns the corpus words that satisfy every row in the
// ledger, in corpus order. It is a pure function of its inputs.
func Candidates(corpus wordlist.Corpus, ledger *guess.Ledger) []string {
	out := []string{}
	corpus.Each(func(word string) {
		if MatchesLedger(word, ledger) {
			out = append(out, word)
		}
	})
	return out
}

// Count returns len(Candidates(corpus, ledger)) without building the slice.
func Count(corpus wordlist.Corpus, ledger *guess.Ledger) int {
	n := 0
	corpus.Each(func(word string) {
		if MatchesLedger(word, ledger) {
			n++
		}
	})
	return n
}

// MatchesLedger reports whether word satisfies every row in the ledger.
func MatchesLedger(word string, ledger *guess.Ledger) bool {
	ok := true
	ledger.Each(func(row guess.Row) bool {
		ok = Matches(word, row)
		return ok
	})
	return ok
}

// Matches reports whether word is consistent with a single row. A word
// whose length differs from the row never matches.
func Matches(word string, row guess.Row) bool {
	runes := []rune(word)
	if len(runes) != len(row) {
		return false
	}
	for i, l := range row {
		if !matchLetter(runes, row, i, l) {
			return false
		}
	}
	return true
}

func matchLetter(word []rune, row guess.Row, i int, l guess.Letter) bool {
	switch l.Outcome {
	case guess.Correct:
		return word[i] == l.Char
	case guess.Present:
		return word[i] != l.Char && contains(word, l.Char)
	case guess.Absent:
		// A repeated letter marked Absent only rules out further
		// occurrences once another entry already accounts for it.
		if accountedElsewhere(row, i, l.Char) {
			return word[i] != l.Char
		}
		return !contains(word, l.Char)
	default:
		return false
	}
}

func accountedElsewhere(row guess.Row, skip int, ch rune) bool {
	for j, other := range row {
		if j == skip || other.Char != ch {
			continue
		}
		if other.Outcome == guess.Correct || other.Outcome == guess.Present {
			return true
		}
	}
	return false
}

func contains(word []rune, ch rune) bool {
	for _, r := range word {
		if r == ch {
			return true
		}
	}
	return false
}

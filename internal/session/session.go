// Package session ties a corpus, a ledger and the session settings
// together for one interactive solving session.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/hintle/internal/guess"
	"github.com/verte-zerg/hintle/internal/model"
	"github.com/verte-zerg/hintle/internal/solver"
	"github.com/verte-zerg/hintle/internal/wordlist"
)

// ErrLedgerFull reports a guess submitted after the maximum was reached.
var ErrLedgerFull = errors.New("maximum number of guesses reached")

// Session is single-writer: the guess entry flow appends rows, views read.
type Session struct {
	id         string
	startedAt  time.Time
	source     wordlist.Source
	corpus     wordlist.Corpus
	ledger     *guess.Ledger
	maxGuesses int

	view    []string
	viewGen uint64
	hasView bool
}

// New starts a session over the source with the given settings.
func New(source wordlist.Source, wordLength, maxGuesses int) *Session {
	s := &Session{source: source}
	s.start(wordLength, maxGuesses)
	return s
}

func (s *Session) start(wordLength, maxGuesses int) {
	s.id = uuid.NewString()
	s.startedAt = time.Now()
	s.corpus = s.source.Corpus(wordLength)
	if s.ledger == nil {
		s.ledger = guess.NewLedger(wordLength)
	} else {
		s.ledger.Reset(wordLength)
	}
	s.maxGuesses = maxGuesses
	s.hasView = false
	s.view = nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// StartedAt returns when the session (or its last reset) began.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// WordLength returns the configured word length.
func (s *Session) WordLength() int { return s.ledger.Width() }

// MaxGuesses returns the configured maximum number of guesses.
func (s *Session) MaxGuesses() int { return s.maxGuesses }

// Corpus returns the loaded corpus.
func (s *Session) Corpus() wordlist.Corpus { return s.corpus }

// Source returns the word list source.
func (s *Session) Source() wordlist.Source { return s.source }

// Ledger returns the session ledger. Callers must not append to it
// directly; use Submit.
func (s *Session) Ledger() *guess.Ledger { return s.ledger }

// Rows returns the submitted rows.
func (s *Session) Rows() []guess.Row { return s.ledger.Rows() }

// Remaining returns how many guesses may still be submitted.
func (s *Session) Remaining() int {
	if s.maxGuesses <= 0 {
		return -1
	}
	return s.maxGuesses - s.ledger.Len()
}

// Full reports whether the maximum number of guesses has been reached.
func (s *Session) Full() bool {
	return s.maxGuesses > 0 && s.ledger.Len() >= s.maxGuesses
}

// Solved reports whether the last row is all Correct.
func (s *Session) Solved() bool {
	return s.ledger.Last().Solved()
}

// Submit appends a row. The ledger is unchanged when it returns an error.
func (s *Session) Submit(row guess.Row) error {
	if s.Full() {
		return fmt.Errorf("guess %d of %d: %w", s.ledger.Len()+1, s.maxGuesses, ErrLedgerFull)
	}
	return s.ledger.Append(row)
}

// Candidates returns the words consistent with every submitted row. The
// result is recomputed from scratch whenever the ledger changed.
func (s *Session) Candidates() []string {
	if !s.hasView || s.viewGen != s.ledger.Generation() {
		s.view = solver.Candidates(s.corpus, s.ledger)
		s.viewGen = s.ledger.Generation()
		s.hasView = true
	}
	return append([]string(nil), s.view...)
}

// Summary returns the letter knowledge carried by the ledger.
func (s *Session) Summary() solver.Summary {
	return solver.Summarize(s.ledger)
}

// Reset clears the ledger and starts a new session with the same settings.
func (s *Session) Reset() {
	s.start(s.ledger.Width(), s.maxGuesses)
}

// Reconfigure re-parses the corpus for a new word length and resets.
func (s *Session) Reconfigure(wordLength, maxGuesses int) {
	s.start(wordLength, maxGuesses)
}

// Record summarizes the session for the session log.
func (s *Session) Record(endedAt time.Time) model.SessionRecord {
	rows := s.ledger.Rows()
	notation := make([]string, len(rows))
	for i, row := range rows {
		notation[i] = row.String()
	}
	rec := model.SessionRecord{
		UUID:         s.id,
		StartedAt:    s.startedAt,
		EndedAt:      endedAt,
		WordLength:   s.ledger.Width(),
		MaxGuesses:   s.maxGuesses,
		WordListPath: s.source.Name,
		CorpusSize:   s.corpus.Len(),
		Candidates:   len(s.Candidates()),
		Rows:         notation,
	}
	if s.Solved() {
		rec.Solved = true
		rec.Solution = s.ledger.Last().Word()
	}
	return rec
}

package session

import (
	"errors"
	"testing"
	"time"

	"github.com/verte-zerg/hintle/internal/guess"
	"github.com/verte-zerg/hintle/internal/wordlist"
)

func testSource() wordlist.Source {
	return wordlist.Source{Name: "test", Raw: "crane\nslate\ntrace\nalien\nplanet\nstream"}
}

func mustRow(t *testing.T, notation string) guess.Row {
	t.Helper()
	row, err := guess.ParseNotation(notation)
	if err != nil {
		t.Fatalf("parse %q: %v", notation, err)
	}
	return row
}

func TestSubmitNarrowsCandidates(t *testing.T) {
	s := New(testSource(), 5, 6)
	if got := s.Candidates(); len(got) != 4 {
		t.Fatalf("expected 4 five-letter words, got %v", got)
	}
	if err := s.Submit(mustRow(t, "CRANE=yggxg")); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	got := s.Candidates()
	if len(got) != 1 || got[0] != "TRACE" {
		t.Fatalf("expected [TRACE], got %v", got)
	}
}

func TestSubmitRejectsMalformedRow(t *testing.T) {
	s := New(testSource(), 5, 6)
	before := s.Candidates()
	if err := s.Submit(guess.NewRow("PLANET")); !errors.Is(err, guess.ErrRowLength) {
		t.Fatalf("expected ErrRowLength, got %v", err)
	}
	if s.Ledger().Len() != 0 {
		t.Fatalf("ledger must be unchanged after rejection")
	}
	if len(s.Candidates()) != len(before) {
		t.Fatalf("candidates changed after rejected row")
	}
}

func TestSubmitEnforcesMaxGuesses(t *testing.T) {
	s := New(testSource(), 5, 2)
	for _, n := range []string{"CRANE=xxxxx", "SLATE=xxxxx"} {
		if err := s.Submit(mustRow(t, n)); err != nil {
			t.Fatalf("Submit(%s) failed: %v", n, err)
		}
	}
	if !s.Full() || s.Remaining() != 0 {
		t.Fatalf("expected full session")
	}
	if err := s.Submit(mustRow(t, "TRACE=xxxxx")); !errors.Is(err, ErrLedgerFull) {
		t.Fatalf("expected ErrLedgerFull, got %v", err)
	}
	if len(s.Candidates()) != 0 {
		t.Fatalf("expected contradictory feedback to leave zero candidates")
	}
}

func TestResetInvalidatesView(t *testing.T) {
	s := New(testSource(), 5, 6)
	if err := s.Submit(mustRow(t, "CRANE=ggggg")); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(s.Candidates()) != 1 {
		t.Fatalf("expected one candidate")
	}
	id := s.ID()
	s.Reset()
	if s.Ledger().Len() != 0 {
		t.Fatalf("expected empty ledger after reset")
	}
	if len(s.Candidates()) != 4 {
		t.Fatalf("stale view after reset: %v", s.Candidates())
	}
	if s.ID() == id {
		t.Fatalf("reset must start a new session id")
	}
}

func TestReconfigureChangesWordLength(t *testing.T) {
	s := New(testSource(), 5, 6)
	s.Reconfigure(6, 3)
	got := s.Candidates()
	if len(got) != 2 || got[0] != "PLANET" || got[1] != "STREAM" {
		t.Fatalf("expected six-letter corpus, got %v", got)
	}
	if s.WordLength() != 6 || s.MaxGuesses() != 3 {
		t.Fatalf("unexpected settings %d/%d", s.WordLength(), s.MaxGuesses())
	}
	if err := s.Submit(mustRow(t, "CRANE=xxxxx")); !errors.Is(err, guess.ErrRowLength) {
		t.Fatalf("five-letter row must be rejected after reconfigure, got %v", err)
	}
}

func TestEmptySourceDegrades(t *testing.T) {
	s := New(wordlist.Source{Name: "empty"}, 5, 6)
	if err := s.Submit(mustRow(t, "CRANE=xyxxg")); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(s.Candidates()) != 0 {
		t.Fatalf("expected no candidates")
	}
}

func TestRecordSolvedSession(t *testing.T) {
	s := New(testSource(), 5, 6)
	_ = s.Submit(mustRow(t, "SLATE=xxgyg"))
	_ = s.Submit(mustRow(t, "TRACE=ggggg"))
	rec := s.Record(time.Now())
	if !rec.Solved || rec.Solution != "TRACE" {
		t.Fatalf("expected solved record, got %+v", rec)
	}
	if len(rec.Rows) != 2 || rec.Rows[0] != "SLATE=xxgyg" {
		t.Fatalf("unexpected rows %v", rec.Rows)
	}
	if rec.CorpusSize != 4 || rec.Candidates != 1 {
		t.Fatalf("unexpected sizes %d/%d", rec.CorpusSize, rec.Candidates)
	}
	if rec.UUID == "" || rec.WordListPath != "test" {
		t.Fatalf("missing identity fields: %+v", rec)
	}
}

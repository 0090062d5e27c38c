package guess

import (
	"errors"
	"testing"
)

func TestLedgerAppendValidatesLength(t *testing.T) {
	l := NewLedger(5)
	if err := l.Append(NewRow("CRANES")); !errors.Is(err, ErrRowLength) {
		t.Fatalf("expected ErrRowLength, got %v", err)
	}
	if err := l.Append(NewRow("CRAN")); !errors.Is(err, ErrRowLength) {
		t.Fatalf("expected ErrRowLength for short row, got %v", err)
	}
	if l.Len() != 0 {
		t.Fatalf("rejected rows must not be stored, got %d rows", l.Len())
	}
	if l.Generation() != 0 {
		t.Fatalf("rejected rows must not bump generation")
	}
}

func TestLedgerRejectsNonLetters(t *testing.T) {
	l := NewLedger(5)
	if err := l.Append(NewRow("CR4NE")); !errors.Is(err, ErrInvalidLetter) {
		t.Fatalf("expected ErrInvalidLetter, got %v", err)
	}
	row := NewRow("CRANE")
	row[2].Outcome = Outcome(9)
	if err := l.Append(row); !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome, got %v", err)
	}
}

func TestLedgerAppendCopiesAndUppercases(t *testing.T) {
	l := NewLedger(5)
	row := Row{{Char: 'c'}, {Char: 'r'}, {Char: 'a', Outcome: Correct}, {Char: 'n'}, {Char: 'e'}}
	if err := l.Append(row); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	row[0].Char = 'z'
	stored := l.Last()
	if stored.Word() != "CRANE" {
		t.Fatalf("expected stored copy CRANE, got %q", stored.Word())
	}
	stored[1].Char = 'Q'
	if l.Rows()[0].Word() != "CRANE" {
		t.Fatalf("Rows must return copies")
	}
}

func TestLedgerResetBumpsGeneration(t *testing.T) {
	l := NewLedger(5)
	if err := l.Append(NewRow("CRANE")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	gen := l.Generation()
	l.Reset(6)
	if l.Len() != 0 {
		t.Fatalf("expected empty ledger after reset")
	}
	if l.Generation() == gen {
		t.Fatalf("reset must change generation")
	}
	if l.Width() != 6 {
		t.Fatalf("expected width 6, got %d", l.Width())
	}
	if l.Last() != nil {
		t.Fatalf("expected nil last row on empty ledger")
	}
}

func TestLedgerEachStops(t *testing.T) {
	l := NewLedger(3)
	for _, w := range []string{"ONE", "TWO", "SIX"} {
		if err := l.Append(NewRow(w)); err != nil {
			t.Fatalf("Append(%s) failed: %v", w, err)
		}
	}
	var seen []string
	l.Each(func(r Row) bool {
		seen = append(seen, r.Word())
		return len(seen) < 2
	})
	if len(seen) != 2 || seen[0] != "ONE" || seen[1] != "TWO" {
		t.Fatalf("unexpected iteration: %v", seen)
	}
}

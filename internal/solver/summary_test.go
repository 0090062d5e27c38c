package solver

import (
	"testing"
)

func TestSummarizeKnownPositionsAndStates(t *testing.T) {
	ledger := ledgerOf(t, 5, "CRANE=yggxg", "TRACE=xggxg")
	s := Summarize(ledger)
	if s.Pattern() != "_RA_E" {
		t.Fatalf("unexpected pattern %q", s.Pattern())
	}
	if s.State('R') != Placed || s.State('A') != Placed {
		t.Fatalf("expected R and A placed")
	}
	if s.State('C') != Misplaced {
		t.Fatalf("expected C misplaced, got %d", s.State('C'))
	}
	if s.State('N') != Excluded || s.State('T') != Excluded {
		t.Fatalf("expected N and T excluded")
	}
	if s.State('Z') != Unknown {
		t.Fatalf("expected Z unknown")
	}
	excluded := s.WithState(Excluded)
	if string(excluded) != "NT" {
		t.Fatalf("unexpected excluded letters %q", string(excluded))
	}
}

func TestSummarizeDuplicateAbsentKeepsBestState(t *testing.T) {
	s := Summarize(ledgerOf(t, 5, "ALLOW=ggxxx"))
	if s.State('L') != Placed {
		t.Fatalf("absent duplicate must not downgrade L, got %d", s.State('L'))
	}
	if s.Pattern() != "AL___" {
		t.Fatalf("unexpected pattern %q", s.Pattern())
	}
}

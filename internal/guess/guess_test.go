package guess

import (
	"errors"
	"testing"
)

func TestParseRowMarks(t *testing.T) {
	row, err := ParseRow("crane", "xy+.g")
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}
	want := []Outcome{Absent, Present, Correct, Absent, Correct}
	if row.Word() != "CRANE" {
		t.Fatalf("expected uppercased word, got %q", row.Word())
	}
	for i, o := range want {
		if row[i].Outcome != o {
			t.Fatalf("position %d: expected %s, got %s", i, o, row[i].Outcome)
		}
	}
	if row.String() != "CRANE=xygxg" {
		t.Fatalf("unexpected notation: %q", row.String())
	}
}

func TestParseRowRejectsBadInput(t *testing.T) {
	if _, err := ParseRow("crane", "xyg"); !errors.Is(err, ErrRowLength) {
		t.Fatalf("expected ErrRowLength, got %v", err)
	}
	if _, err := ParseRow("crane", "xyzgg"); !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome, got %v", err)
	}
	if _, err := ParseNotation("crane"); err == nil {
		t.Fatalf("expected error for missing marks")
	}
}

func TestParseNotationColon(t *testing.T) {
	row, err := ParseNotation("slate:ggggg")
	if err != nil {
		t.Fatalf("ParseNotation failed: %v", err)
	}
	if !row.Solved() {
		t.Fatalf("expected solved row, got %s", row)
	}
}

func TestNewRowDefaultsAbsent(t *testing.T) {
	row := NewRow("hello")
	for i, l := range row {
		if l.Outcome != Absent {
			t.Fatalf("position %d: expected absent default, got %s", i, l.Outcome)
		}
	}
	if row.Solved() {
		t.Fatalf("fresh row must not be solved")
	}
}

func TestScoreRepeatedLetters(t *testing.T) {
	cases := []struct {
		guess string
		marks string
	}{
		{guess: "ALLOW", marks: "gggxx"},
		{guess: "LLAMA", marks: "ygyxx"},
		{guess: "ALIEN", marks: "ggxgx"},
		{guess: "alley", marks: "ggggg"},
	}
	for _, tc := range cases {
		row, err := Score("ALLEY", tc.guess)
		if err != nil {
			t.Fatalf("Score(%s) failed: %v", tc.guess, err)
		}
		if row.Marks() != tc.marks {
			t.Fatalf("Score(ALLEY, %s) = %s, want %s", tc.guess, row.Marks(), tc.marks)
		}
	}
}

func TestScoreLengthMismatch(t *testing.T) {
	if _, err := Score("CRANE", "CRANES"); !errors.Is(err, ErrRowLength) {
		t.Fatalf("expected ErrRowLength, got %v", err)
	}
}

package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Ended", "Guesses", "Solution"}
	rows := [][]string{
		{"2024-01-02", "4", "TRACE"},
		{"today", "12", "-"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "Ended      Guesses Solution" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "---------- ------- --------" {
		t.Fatalf("unexpected rule line: %q", lines[1])
	}
	if lines[2] != "2024-01-02       4 TRACE" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
	if lines[3] != "today           12 -" {
		t.Fatalf("unexpected row line: %q", lines[3])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}

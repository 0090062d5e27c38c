// Package stats contains session log calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/hintle/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Totals summarizes a set of logged sessions.
type Totals struct {
	Sessions   int
	Solved     int
	SolveRate  float64
	AvgGuesses float64
	// AvgReduction is the mean fraction of the corpus eliminated.
	AvgReduction float64
}

// ComputeTotals aggregates sessions. AvgGuesses counts solved sessions only.
func ComputeTotals(sessions []model.SessionAggregate) Totals {
	t := Totals{Sessions: len(sessions)}
	if len(sessions) == 0 {
		return t
	}
	guesses := 0
	var reduction float64
	for _, s := range sessions {
		if s.Solved {
			t.Solved++
			guesses += s.Guesses
		}
		reduction += Reduction(s.CorpusSize, s.Candidates)
	}
	t.SolveRate = float64(t.Solved) / float64(t.Sessions)
	if t.Solved > 0 {
		t.AvgGuesses = float64(guesses) / float64(t.Solved)
	}
	t.AvgReduction = reduction / float64(t.Sessions)
	return t
}

// Reduction returns the share of the corpus no longer a candidate.
func Reduction(corpusSize, candidates int) float64 {
	if corpusSize <= 0 {
		return 0
	}
	if candidates > corpusSize {
		candidates = corpusSize
	}
	return 1 - float64(candidates)/float64(corpusSize)
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints summary totals for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	t := ComputeTotals(sessions)
	guessCounts := make([]float64, 0, len(sessions))
	for _, s := range sessions {
		guessCounts = append(guessCounts, float64(s.Guesses))
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", t.Sessions),
		fmt.Sprintf("Solved: %d (%.1f%%)", t.Solved, t.SolveRate*100),
		fmt.Sprintf("Avg guesses to solve: %.2f", t.AvgGuesses),
		fmt.Sprintf("Avg corpus eliminated: %.1f%%", t.AvgReduction*100),
		fmt.Sprintf("Guesses per session: %s", Sparkline(guessCounts)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSessionTable prints one line per session, newest last. Lines
// longer than width are truncated when width > 0.
func RenderSessionTable(w io.Writer, sessions []model.SessionAggregate, width int) error {
	if len(sessions) == 0 {
		return nil
	}
	headers := []string{"Ended", "Len", "Guesses", "Left", "Solution"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		solution := "-"
		if s.Solved {
			solution = s.Solution
		}
		rows = append(rows, []string{
			s.EndedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", s.WordLength),
			fmt.Sprintf("%d", s.Guesses),
			fmt.Sprintf("%d/%d", s.Candidates, s.CorpusSize),
			solution,
		})
	}
	if _, err := fmt.Fprintln(w, "Sessions"); err != nil {
		return err
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, truncateLine(line, width)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

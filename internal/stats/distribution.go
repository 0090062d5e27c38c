package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/hintle/internal/model"
)

// GuessDistribution counts solved sessions by number of guesses. Index 0
// holds one-guess solves; sessions above maxGuesses land in the last slot.
func GuessDistribution(sessions []model.SessionAggregate, maxGuesses int) []int {
	if maxGuesses <= 0 {
		for _, s := range sessions {
			if s.Guesses > maxGuesses {
				maxGuesses = s.Guesses
			}
		}
	}
	if maxGuesses <= 0 {
		return nil
	}
	counts := make([]int, maxGuesses)
	for _, s := range sessions {
		if !s.Solved || s.Guesses <= 0 {
			continue
		}
		idx := s.Guesses - 1
		if idx >= maxGuesses {
			idx = maxGuesses - 1
		}
		counts[idx]++
	}
	return counts
}

// RenderDistribution prints a horizontal bar per guess count scaled to
// barWidth columns.
func RenderDistribution(w io.Writer, counts []int, barWidth int) error {
	if len(counts) == 0 {
		return nil
	}
	if barWidth <= 0 {
		barWidth = 30
	}
	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}
	if _, err := fmt.Fprintln(w, "Guess Distribution"); err != nil {
		return err
	}
	for i, c := range counts {
		bar := 0
		if peak > 0 {
			bar = c * barWidth / peak
		}
		if c > 0 && bar == 0 {
			bar = 1
		}
		if _, err := fmt.Fprintf(w, "%2d | %s %d\n", i+1, strings.Repeat("#", bar), c); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

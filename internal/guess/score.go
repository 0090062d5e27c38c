package guess

import (
	"fmt"
	"strings"
)

// Score returns the feedback row the target word gives for guessWord,
// using the standard two-pass rule for repeated letters: exact matches
// first, then Present for remaining occurrences, left to right.
func Score(target, guessWord string) (Row, error) {
	targetRunes := []rune(strings.ToUpper(target))
	row := NewRow(guessWord)
	if len(row) != len(targetRunes) {
		return nil, fmt.Errorf("guess %q against target %q: %w", guessWord, target, ErrRowLength)
	}

	remaining := map[rune]int{}
	for i, l := range row {
		if l.Char == targetRunes[i] {
			row[i].Outcome = Correct
			continue
		}
		remaining[targetRunes[i]]++
	}
	for i, l := range row {
		if l.Outcome == Correct {
			continue
		}
		if remaining[l.Char] > 0 {
			row[i].Outcome = Present
			remaining[l.Char]--
		}
	}
	return row, nil
}

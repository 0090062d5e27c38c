package wordlist

import "unicode/utf8"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// ForLength keeps words of exactly width runes.
func ForLength(width int) FilterFunc {
	return func(word string) bool {
		if word == "" || width <= 0 {
			return false
		}
		return utf8.RuneCountInString(word) == width
	}
}

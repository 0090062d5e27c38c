// Package wordlist loads the dictionary corpus from newline-delimited text.
package wordlist

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultSource is the name reported for the embedded word list.
const DefaultSource = "embedded"

//go:embed words.txt
var embeddedWords string

// Corpus is an immutable, ordered, duplicate-free set of uppercase
// words that all share the same length.
type Corpus struct {
	width int
	words []string
}

// Parse builds a corpus from raw text: every line is uppercased and kept
// only when its length is width. Malformed input yields an empty corpus.
func Parse(raw string, width int) Corpus {
	keep := ForLength(width)
	seen := map[string]struct{}{}
	var words []string
	for _, line := range strings.Split(strings.ToUpper(raw), "\n") {
		word := strings.TrimSpace(line)
		if !keep(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return Corpus{width: width, words: words}
}

// NewCorpus builds a corpus from an in-memory list of words.
func NewCorpus(words []string, width int) Corpus {
	return Parse(strings.Join(words, "\n"), width)
}

// Width returns the word length of the corpus.
func (c Corpus) Width() int {
	return c.width
}

// Len returns the number of words.
func (c Corpus) Len() int {
	return len(c.words)
}

// Words returns a copy of the words in load order.
func (c Corpus) Words() []string {
	return append([]string(nil), c.words...)
}

// Each calls fn for each word in load order.
func (c Corpus) Each(fn func(string)) {
	for _, w := range c.words {
		fn(w)
	}
}

// Contains reports whether word is in the corpus, ignoring case.
func (c Corpus) Contains(word string) bool {
	word = strings.ToUpper(word)
	for _, w := range c.words {
		if w == word {
			return true
		}
	}
	return false
}

// Source holds the raw text of a word list so it can be re-parsed when
// the word length changes.
type Source struct {
	Name string
	Raw  string
}

// Embedded returns the word list compiled into the binary.
func Embedded() Source {
	return Source{Name: DefaultSource, Raw: embeddedWords}
}

// ReadFile reads a word list from path.
func ReadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read word list: %w", err)
	}
	if !utf8.Valid(data) {
		return Source{}, fmt.Errorf("word list %s is not valid UTF-8", path)
	}
	return Source{Name: path, Raw: string(data)}, nil
}

// Corpus parses the source for the given word length.
func (s Source) Corpus(width int) Corpus {
	return Parse(s.Raw, width)
}

package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFiltersLengthAndUppercases(t *testing.T) {
	raw := "crane\nSlate\nto\ntraces\n  trace  \n\ncrane\nA-Z\r\n"
	corpus := Parse(raw, 5)
	want := []string{"CRANE", "SLATE", "TRACE"}
	got := corpus.Words()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("expected %q at index %d, got %q", w, i, got[i])
		}
	}
	if corpus.Width() != 5 {
		t.Fatalf("expected width 5, got %d", corpus.Width())
	}
}

func TestParseMalformedInputIsEmpty(t *testing.T) {
	corpus := Parse("a\nbb\nccc", 5)
	if corpus.Len() != 0 {
		t.Fatalf("expected empty corpus, got %v", corpus.Words())
	}
	if Parse("", 5).Len() != 0 {
		t.Fatalf("expected empty corpus for empty input")
	}
	if Parse("crane", 0).Len() != 0 {
		t.Fatalf("expected empty corpus for zero width")
	}
}

func TestParseCountsRunes(t *testing.T) {
	corpus := Parse("résumé\nnaïve", 5)
	if !corpus.Contains("naïve") {
		t.Fatalf("expected rune-length match for naïve, got %v", corpus.Words())
	}
	if corpus.Contains("résumé") {
		t.Fatalf("résumé has six runes")
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	corpus := NewCorpus([]string{"apple", "alloy"}, 5)
	words := corpus.Words()
	words[0] = "ZZZZZ"
	if corpus.Words()[0] != "APPLE" {
		t.Fatalf("corpus must not be mutated through Words")
	}
}

func TestEmbeddedHasFiveLetterWords(t *testing.T) {
	corpus := Embedded().Corpus(5)
	if corpus.Len() < 100 {
		t.Fatalf("expected embedded list to carry five-letter words, got %d", corpus.Len())
	}
	for _, w := range []string{"CRANE", "SLATE", "TRACE"} {
		if !corpus.Contains(w) {
			t.Fatalf("expected embedded list to contain %s", w)
		}
	}
	for _, w := range corpus.Words() {
		if w != strings.ToUpper(w) || len([]rune(w)) != 5 {
			t.Fatalf("unexpected corpus entry %q", w)
		}
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("hello\nworld\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	src, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if src.Name != path {
		t.Fatalf("expected source name %q, got %q", path, src.Name)
	}
	if src.Corpus(5).Len() != 2 {
		t.Fatalf("expected 2 words, got %d", src.Corpus(5).Len())
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

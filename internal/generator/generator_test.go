package generator

import (
	"testing"

	"github.com/verte-zerg/hintle/internal/wordlist"
)

func TestPlayStopsWhenSolved(t *testing.T) {
	corpus := wordlist.NewCorpus([]string{"CRANE", "SLATE", "TRACE"}, 5)
	game, err := Play(corpus, "TRACE", []string{"crane", "trace", "slate"}, 6)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if len(game.Turns) != 2 || !game.Solved() {
		t.Fatalf("expected solve on the second turn, got %+v", game.Turns)
	}
	if game.Turns[0].Row.String() != "CRANE=yggxg" {
		t.Fatalf("unexpected feedback %s", game.Turns[0].Row)
	}
	if game.Turns[0].Remaining != 1 || game.Turns[1].Remaining != 1 {
		t.Fatalf("unexpected remaining counts: %+v", game.Turns)
	}
}

func TestPlayHonorsMaxGuesses(t *testing.T) {
	corpus := wordlist.NewCorpus([]string{"CRANE", "SLATE", "TRACE"}, 5)
	game, err := Play(corpus, "TRACE", []string{"crane", "slate", "trace"}, 2)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if len(game.Turns) != 2 || game.Solved() {
		t.Fatalf("expected two unsolved turns, got %+v", game.Turns)
	}
}

func TestPlayRejectsWrongLength(t *testing.T) {
	corpus := wordlist.NewCorpus([]string{"CRANE"}, 5)
	if _, err := Play(corpus, "CRANE", []string{"CRANES"}, 6); err == nil {
		t.Fatalf("expected length error")
	}
}

func TestRandomGameAlwaysFindsTarget(t *testing.T) {
	corpus := wordlist.Embedded().Corpus(5)
	gen := New(42)
	for i := 0; i < 50; i++ {
		target := gen.Pick(corpus)
		game, err := gen.RandomGame(corpus, target, 0)
		if err != nil {
			t.Fatalf("RandomGame failed: %v", err)
		}
		if !game.Solved() {
			t.Fatalf("unbounded game for %s must end solved: %+v", target, game.Turns)
		}
		for j := 1; j < len(game.Turns); j++ {
			if game.Turns[j].Remaining > game.Turns[j-1].Remaining {
				t.Fatalf("remaining count grew for %s", target)
			}
		}
	}
}

func TestPickEmptyCorpus(t *testing.T) {
	if New(1).Pick(wordlist.Parse("", 5)) != "" {
		t.Fatalf("expected empty pick")
	}
}

// Package generator builds simulated games from a corpus: a random target
// and the feedback the target gives for a sequence of guesses.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/hintle/internal/guess"
	"github.com/verte-zerg/hintle/internal/solver"
	"github.com/verte-zerg/hintle/internal/wordlist"
)

// Generator picks words at random from a corpus.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with seed, or with the current time
// when seed is 0.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly chosen corpus word, or "" for an empty corpus.
func (g *Generator) Pick(corpus wordlist.Corpus) string {
	words := corpus.Words()
	if len(words) == 0 {
		return ""
	}
	return words[g.rnd.Intn(len(words))]
}

// Turn is one simulated guess and the candidates left after it.
type Turn struct {
	Row       guess.Row
	Remaining int
}

// Game is a target word and the turns played against it.
type Game struct {
	Target string
	Turns  []Turn
}

// Solved reports whether the last turn guessed the target.
func (g Game) Solved() bool {
	if len(g.Turns) == 0 {
		return false
	}
	return g.Turns[len(g.Turns)-1].Row.Solved()
}

// Play scores each guess against target and records how many corpus
// words remain after every turn. It stops early once the target is
// guessed or maxGuesses rows were played.
func Play(corpus wordlist.Corpus, target string, guesses []string, maxGuesses int) (Game, error) {
	ledger := guess.NewLedger(corpus.Width())
	game := Game{Target: target}
	for _, word := range guesses {
		if maxGuesses > 0 && ledger.Len() >= maxGuesses {
			break
		}
		row, err := guess.Score(target, word)
		if err != nil {
			return game, err
		}
		if err := ledger.Append(row); err != nil {
			return game, fmt.Errorf("turn %d: %w", ledger.Len()+1, err)
		}
		game.Turns = append(game.Turns, Turn{Row: row, Remaining: solver.Count(corpus, ledger)})
		if row.Solved() {
			break
		}
	}
	return game, nil
}

// RandomGame plays random guesses against target until it is found or
// maxGuesses is reached. Each guess is drawn from the words still
// consistent with the feedback so far.
func (g *Generator) RandomGame(corpus wordlist.Corpus, target string, maxGuesses int) (Game, error) {
	ledger := guess.NewLedger(corpus.Width())
	game := Game{Target: target}
	for maxGuesses <= 0 || ledger.Len() < maxGuesses {
		pool := solver.Candidates(corpus, ledger)
		if len(pool) == 0 {
			break
		}
		row, err := guess.Score(target, pool[g.rnd.Intn(len(pool))])
		if err != nil {
			return game, err
		}
		if err := ledger.Append(row); err != nil {
			return game, err
		}
		game.Turns = append(game.Turns, Turn{Row: row, Remaining: solver.Count(corpus, ledger)})
		if row.Solved() {
			break
		}
	}
	return game, nil
}

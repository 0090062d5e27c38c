package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/hintle/internal/generator"
	"github.com/verte-zerg/hintle/internal/guess"
	"github.com/verte-zerg/hintle/internal/session"
)

var (
	filterGuesses []string

	simulateTarget  string
	simulateGuesses []string
	simulateSeed    int64
)

func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print the words consistent with the given feedback rows",
		Example: "  hintle filter --guess CRANE=xyxxg --guess SLOPE=xxxxg\n" +
			"  hintle filter CRANE=xyxxg SLOPE=xxxxg",
		Args: cobra.ArbitraryArgs,
		RunE: runFilterCmd,
	}
	cmd.Flags().StringArrayVar(&filterGuesses, "guess", nil, "feedback row WORD=MARKS (g correct, y present, x absent); repeatable")
	return cmd
}

func runFilterCmd(cmd *cobra.Command, args []string) error {
	_, cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sess := session.New(loadSource(cfg.WordList), cfg.WordLength, 0)
	for _, notation := range append(append([]string(nil), filterGuesses...), args...) {
		row, err := guess.ParseNotation(notation)
		if err != nil {
			return fmt.Errorf("invalid --guess %q: %w", notation, err)
		}
		if err := sess.Submit(row); err != nil {
			return err
		}
	}
	log.Debug().Int("rows", sess.Ledger().Len()).Int("corpus", sess.Corpus().Len()).Msg("filtering")
	return writeCandidates(cmd.OutOrStdout(), sess.Candidates(), cfg.Show)
}

func writeCandidates(w io.Writer, words []string, show int) error {
	if len(words) == 0 {
		_, err := fmt.Fprintln(w, "Possible words: none")
		return err
	}
	shown := words
	if show > 0 && len(shown) > show {
		shown = shown[:show]
	}
	if _, err := fmt.Fprintf(w, "Possible words (showing %d of %d)\n", len(shown), len(words)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintln(w, strings.Join(shown, "\n")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play guesses against a target and show how the candidates shrink",
		Args:  cobra.NoArgs,
		RunE:  runSimulateCmd,
	}
	cmd.Flags().StringVar(&simulateTarget, "target", "", "target word (default: random corpus word)")
	cmd.Flags().StringArrayVar(&simulateGuesses, "guess", nil, "guess word; repeatable (default: random consistent guesses)")
	cmd.Flags().Int64Var(&simulateSeed, "seed", 0, "random seed (default: time based)")
	return cmd
}

func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	_, cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	corpus := loadSource(cfg.WordList).Corpus(cfg.WordLength)
	gen := generator.New(simulateSeed)

	target := strings.ToUpper(strings.TrimSpace(simulateTarget))
	if target == "" {
		target = gen.Pick(corpus)
		if target == "" {
			return fmt.Errorf("no %d-letter words to pick a target from", cfg.WordLength)
		}
	} else if !corpus.Contains(target) {
		log.Warn().Str("target", target).Str("wordlist", cfg.WordList).
			Msg("target is not in the word list; it will never appear as a candidate")
	}

	var game generator.Game
	if len(simulateGuesses) > 0 {
		game, err = generator.Play(corpus, target, simulateGuesses, cfg.MaxGuesses)
	} else {
		game, err = gen.RandomGame(corpus, target, cfg.MaxGuesses)
	}
	if err != nil {
		return fmt.Errorf("failed to simulate: %w", err)
	}
	return writeGame(cmd.OutOrStdout(), game, corpus.Len())
}

func writeGame(w io.Writer, game generator.Game, corpusSize int) error {
	lines := []string{fmt.Sprintf("Target %s, %d words", game.Target, corpusSize)}
	for i, turn := range game.Turns {
		lines = append(lines, fmt.Sprintf("%d. %s  %d left", i+1, turn.Row, turn.Remaining))
	}
	if game.Solved() {
		lines = append(lines, fmt.Sprintf("Solved in %d", len(game.Turns)))
	} else {
		lines = append(lines, "Not solved")
	}
	if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

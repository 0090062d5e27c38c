package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/hintle/internal/config"
	"github.com/verte-zerg/hintle/internal/model"
	"github.com/verte-zerg/hintle/internal/stats"
	"github.com/verte-zerg/hintle/internal/store"
)

var (
	historySince string
	historyLast  int
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded sessions",
		Long: "Show recorded sessions. Sessions of every word length are listed " +
			"unless --word-length is given.",
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N sessions")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "last", &historyLast, fileCfg.History.Last)
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	histCfg := model.HistoryConfig{Since: sinceTime, Last: historyLast}
	if cmd.Flags().Changed("word-length") {
		histCfg.WordLength = cfg.WordLength
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("failed to close db")
		}
	}()

	report, err := stats.BuildReport(context.Background(), st, histCfg, cfg.MaxGuesses)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if err := stats.RenderReport(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/verte-zerg/hintle/internal/model"
	"github.com/verte-zerg/hintle/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Sessions     []model.SessionAggregate
	Distribution []int
	// LastRows holds the feedback rows of the newest listed session.
	LastRows []string
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig, maxGuesses int) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	report := Report{
		Sessions:     sessions,
		Distribution: GuessDistribution(sessions, maxGuesses),
	}
	if len(sessions) > 0 {
		report.LastRows, err = st.ListRows(ctx, sessions[len(sessions)-1].SessionID)
		if err != nil {
			return Report{}, err
		}
	}
	return report, nil
}

// RenderReport prints the summary, the distribution and the session
// table, sized to the terminal when w is one.
func RenderReport(w io.Writer, report Report) error {
	if err := RenderSummary(w, report.Sessions); err != nil {
		return err
	}
	if len(report.Sessions) == 0 {
		return nil
	}
	width := outputWidth(w)
	barWidth := 30
	if width > 0 && width-12 < barWidth {
		barWidth = width - 12
	}
	if err := RenderDistribution(w, report.Distribution, barWidth); err != nil {
		return err
	}
	if err := RenderSessionTable(w, report.Sessions, width); err != nil {
		return err
	}
	return RenderRows(w, report.LastRows)
}

// RenderRows prints the rows of the most recent session.
func RenderRows(w io.Writer, rows []string) error {
	if len(rows) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Last session"); err != nil {
		return err
	}
	for i, row := range rows {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, row); err != nil {
			return err
		}
	}
	return nil
}

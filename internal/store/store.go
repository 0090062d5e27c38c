// Package store handles the SQLite session log.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/hintle/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed-width UTC so stored timestamps sort as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store wraps SQLite access for finished sessions.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			uuid TEXT NOT NULL UNIQUE,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			word_length INTEGER NOT NULL,
			max_guesses INTEGER NOT NULL,
			wordlist_path TEXT NOT NULL,
			corpus_size INTEGER NOT NULL,
			candidates INTEGER NOT NULL,
			solved INTEGER NOT NULL,
			solution TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS session_rows (
			session_id INTEGER NOT NULL,
			idx INTEGER NOT NULL,
			notation TEXT NOT NULL,
			PRIMARY KEY (session_id, idx)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSession stores a finished session and its rows.
func (s *Store) InsertSession(ctx context.Context, rec model.SessionRecord) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (uuid, started_at, ended_at, word_length, max_guesses, wordlist_path, corpus_size, candidates, solved, solution)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.UUID,
		formatTime(rec.StartedAt),
		formatTime(rec.EndedAt),
		rec.WordLength,
		rec.MaxGuesses,
		rec.WordListPath,
		rec.CorpusSize,
		rec.Candidates,
		boolToInt(rec.Solved),
		rec.Solution,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(rec.Rows) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO session_rows (session_id, idx, notation) VALUES (?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, notation := range rec.Rows {
			if _, err := stmt.ExecContext(ctx, id, i, notation); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListSessions returns session aggregates filtered by the history config,
// oldest first.
func (s *Store) ListSessions(ctx context.Context, cfg model.HistoryConfig) ([]model.SessionAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.WordLength > 0 {
		clauses = append(clauses, "s.word_length = ?")
		args = append(args, cfg.WordLength)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "s.ended_at >= ?")
		args = append(args, formatTime(*cfg.Since))
	}
	query := fmt.Sprintf(`SELECT s.id, s.uuid, s.ended_at, s.word_length, s.corpus_size, s.candidates, s.solved, s.solution,
		(SELECT COUNT(*) FROM session_rows r WHERE r.session_id = s.id) AS guesses
		FROM sessions s
		WHERE %s
		ORDER BY s.ended_at ASC, s.id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionAggregate
	for rows.Next() {
		var agg model.SessionAggregate
		var endedAt string
		var solved int
		if err := rows.Scan(&agg.SessionID, &agg.UUID, &endedAt, &agg.WordLength, &agg.CorpusSize, &agg.Candidates, &solved, &agg.Solution, &agg.Guesses); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed.Local()
		agg.Solved = solved != 0
		sessions = append(sessions, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	return sessions, nil
}

// ListRows returns the row notations of a session in submission order.
func (s *Store) ListRows(ctx context.Context, sessionID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT notation FROM session_rows WHERE session_id = ? ORDER BY idx ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var out []string
	for rows.Next() {
		var notation string
		if err := rows.Scan(&notation); err != nil {
			return nil, err
		}
		out = append(out, notation)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/davelt/healthtui/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the lifetime activity archive. Session state
// itself stays in memory; the archive only records finished activities so the
// stats command can aggregate across runs.
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
		`CREATE TABLE IF NOT EXISTS activities (
			id INTEGER PRIMARY KEY,
			kind TEXT NOT NULL,
			subject TEXT NOT NULL,
			correct INTEGER NOT NULL,
			at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_activities_at ON activities(at);`,
		`CREATE INDEX IF NOT EXISTS idx_activities_kind_subject ON activities(kind, subject);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertActivities archives a batch of history entries in one transaction.
func (s *Store) InsertActivities(ctx context.Context, entries []model.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO activities (kind, subject, correct, at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, e := range entries {
		correct := 0
		if e.Correct {
			correct = 1
		}
		if _, err = stmt.ExecContext(ctx, string(e.Kind), e.Subject, correct, e.At.Format(time.RFC3339Nano)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListActivities returns archived entries matching the filters, oldest first.
func (s *Store) ListActivities(ctx context.Context, cfg model.StatsConfig) ([]model.StoredActivity, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Topic != "" {
		clauses = append(clauses, "subject = ?")
		args = append(args, cfg.Topic)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, kind, subject, correct, at
		FROM activities
		WHERE %s
		ORDER BY at ASC, id ASC`, strings.Join(clauses, " AND "))
	if cfg.Last > 0 {
		// Keep only the newest rows, re-sorted oldest first.
		query = fmt.Sprintf(`SELECT * FROM (
			SELECT id, kind, subject, correct, at
			FROM activities
			WHERE %s
			ORDER BY at DESC, id DESC
			LIMIT %d
		) ORDER BY at ASC, id ASC`, strings.Join(clauses, " AND "), cfg.Last)
	}

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

	var result []model.StoredActivity
	for rows.Next() {
		var act model.StoredActivity
		var kind string
		var correct int
		var at string
		if err := rows.Scan(&act.ID, &kind, &act.Subject, &correct, &at); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, err
		}
		act.Kind = model.ActivityKind(kind)
		act.Correct = correct != 0
		act.At = parsed
		result = append(result, act)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// TopicAggregates sums quiz attempts per topic across the archive.
func (s *Store) TopicAggregates(ctx context.Context, cfg model.StatsConfig) ([]model.TopicAggregate, error) {
	clauses := []string{"kind = 'quiz'"}
	args := []any{}
	if cfg.Topic != "" {
		clauses = append(clauses, "subject = ?")
		args = append(args, cfg.Topic)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	inner := fmt.Sprintf(`SELECT subject, correct FROM activities WHERE %s ORDER BY at DESC, id DESC`, strings.Join(clauses, " AND "))
	if cfg.Last > 0 {
		inner += fmt.Sprintf(" LIMIT %d", cfg.Last)
	}
	query := fmt.Sprintf(`SELECT subject, SUM(correct) AS correct, COUNT(*) AS total
		FROM (%s)
		GROUP BY subject
		ORDER BY subject ASC`, inner)

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

	var result []model.TopicAggregate
	for rows.Next() {
		var agg model.TopicAggregate
		if err := rows.Scan(&agg.TopicKey, &agg.Correct, &agg.Total); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// RecentQuizResults returns the correctness of the newest quiz attempts,
// oldest first, for trend rendering.
func (s *Store) RecentQuizResults(ctx context.Context, cfg model.StatsConfig, limit int) ([]bool, error) {
	if limit <= 0 {
		return nil, nil
	}
	clauses := []string{"kind = 'quiz'"}
	args := []any{}
	if cfg.Topic != "" {
		clauses = append(clauses, "subject = ?")
		args = append(args, cfg.Topic)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT correct FROM (
		SELECT correct, at, id FROM activities
		WHERE %s
		ORDER BY at DESC, id DESC
		LIMIT %d
	) ORDER BY at ASC, id ASC`, strings.Join(clauses, " AND "), limit)

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

	var result []bool
	for rows.Next() {
		var correct int
		if err := rows.Scan(&correct); err != nil {
			return nil, err
		}
		result = append(result, correct != 0)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

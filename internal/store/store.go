// Package store handles SQLite persistence of user-managed samples.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/typetheme/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the sample corpus.
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
		`CREATE TABLE IF NOT EXISTS samples (
			id INTEGER PRIMARY KEY,
			theme TEXT NOT NULL,
			text TEXT NOT NULL,
			created_at TEXT NOT NULL,
			UNIQUE (theme, text)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_samples_theme ON samples(theme);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AddSample stores a sample under a theme. Adding an existing sample returns its id.
func (s *Store) AddSample(ctx context.Context, theme model.Theme, text string) (int64, error) {
	theme = normalizeTheme(theme)
	if theme == "" {
		return 0, fmt.Errorf("theme is empty")
	}
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("sample text is empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO samples (theme, text, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (theme, text) DO NOTHING`,
		string(theme), text, time.Now().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	var id int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT id FROM samples WHERE theme = ? AND text = ?`, string(theme), text,
	).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// AddSamples stores several samples in one transaction and returns how many were new.
func (s *Store) AddSamples(ctx context.Context, theme model.Theme, texts []string) (added int, err error) {
	theme = normalizeTheme(theme)
	if theme == "" {
		return 0, fmt.Errorf("theme is empty")
	}
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

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO samples (theme, text, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (theme, text) DO NOTHING`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	now := time.Now().Format(time.RFC3339Nano)
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx, string(theme), text, now)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		added += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// RemoveSample deletes a sample by id and reports whether it existed.
func (s *Store) RemoveSample(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM samples WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListSamples returns stored samples, optionally filtered by theme, oldest first.
func (s *Store) ListSamples(ctx context.Context, theme model.Theme) ([]model.Sample, error) {
	theme = normalizeTheme(theme)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, theme, text, created_at
		FROM samples
		WHERE (? = '' OR theme = ?)
		ORDER BY theme ASC, id ASC`, string(theme), string(theme))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var samples []model.Sample
	for rows.Next() {
		var sample model.Sample
		var createdAt string
		if err := rows.Scan(&sample.ID, &sample.Theme, &sample.Text, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		sample.CreatedAt = parsed
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

// Pool groups every stored sample by theme.
func (s *Store) Pool(ctx context.Context) (map[model.Theme][]string, error) {
	samples, err := s.ListSamples(ctx, "")
	if err != nil {
		return nil, err
	}
	pool := map[model.Theme][]string{}
	for _, sample := range samples {
		pool[sample.Theme] = append(pool[sample.Theme], sample.Text)
	}
	return pool, nil
}

func normalizeTheme(theme model.Theme) model.Theme {
	return model.Theme(strings.ToLower(strings.TrimSpace(string(theme))))
}

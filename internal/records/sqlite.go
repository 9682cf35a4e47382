package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"cosmic-mines/internal/records/migrations"

	_ "modernc.org/sqlite"
)

const migrationTable = "schema_migrations"

// SQLiteStore persists results in a SQLite file.
type SQLiteStore struct {
	sqlDB *sql.DB
}

// Open opens (or creates) the records database and applies the schema.
func Open(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordResult inserts one result. A zero PlayedAt is stamped with now.
func (s *SQLiteStore) RecordResult(ctx context.Context, result Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if result.Rows <= 0 {
		return fmt.Errorf("rows must be greater than zero")
	}
	playedAt := result.PlayedAt.UTC()
	if playedAt.IsZero() {
		playedAt = time.Now().UTC()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO level_results (level, rows, mines, elapsed_seconds, hints_used, won, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.Level,
		result.Rows,
		result.Mines,
		result.ElapsedSeconds,
		result.HintsUsed,
		boolToInt(result.Won),
		playedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert level result: %w", err)
	}
	return nil
}

// BestTime returns the fastest win recorded for a board size.
func (s *SQLiteStore) BestTime(ctx context.Context, rows int) (int, bool, error) {
	var best sql.NullInt64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT MIN(elapsed_seconds) FROM level_results WHERE rows = ? AND won = 1`,
		rows,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("query best time: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// Recent lists the latest results, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT level, rows, mines, elapsed_seconds, hints_used, won, played_at
		 FROM level_results ORDER BY played_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var (
			r        Result
			won      int
			playedAt int64
		)
		if err := rows.Scan(&r.Level, &r.Rows, &r.Mines, &r.ElapsedSeconds, &r.HintsUsed, &won, &playedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Won = won != 0
		r.PlayedAt = time.UnixMilli(playedAt).UTC()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}

// applyMigrations runs every *.sql file of migrationFS once, in name order.
func applyMigrations(sqlDB *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, name := range files {
		var applied string
		err := sqlDB.QueryRow(`SELECT name FROM `+migrationTable+` WHERE name = ?`, name).Scan(&applied)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration %s: %w", name, err)
		}

		content, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		tx, err := sqlDB.BeginTx(context.Background(), nil)
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", name, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`, name, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("mark migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

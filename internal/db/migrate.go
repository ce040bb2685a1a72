package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateNormalizeEventKinds(db); err != nil {
		return fmt.Errorf("normalizing event kinds: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS attendance_events (
		id          TEXT PRIMARY KEY,
		subject_id  TEXT NOT NULL,
		kind        TEXT NOT NULL,
		occurred_at TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_subject_occurred ON attendance_events(subject_id, occurred_at)`,

	// Free-form note attached when punching.
	`ALTER TABLE attendance_events ADD COLUMN note TEXT NOT NULL DEFAULT ''`,
}

// legacyKinds maps the CamelCase kind names written by early versions to
// their current wire form.
var legacyKinds = map[string]string{
	"WorkStart":  "work_start",
	"WorkEnd":    "work_end",
	"BreakStart": "break_start",
	"BreakEnd":   "break_end",
}

// migrateNormalizeEventKinds rewrites legacy kind names in place.
// Idempotent: rows already in wire form are untouched. Kinds it does not
// recognise are left as-is.
func migrateNormalizeEventKinds(db *sql.DB) error {
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for legacy, current := range legacyKinds {
		if _, err := tx.ExecContext(ctx,
			`UPDATE attendance_events SET kind = ? WHERE kind = ?`, current, legacy); err != nil {
			return fmt.Errorf("rewriting kind %s: %w", legacy, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing kind migration: %w", err)
	}
	committed = true
	return nil
}

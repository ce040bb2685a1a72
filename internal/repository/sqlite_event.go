package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/domain"
)

const eventColumns = `id, subject_id, kind, occurred_at, created_at, note`

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db db.DBTX
}

func NewSQLiteEventRepo(db db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.AttendanceEvent) error {
	query := `INSERT INTO attendance_events (` + eventColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.SubjectID,
		string(e.Kind),
		formatTime(e.Timestamp),
		formatTime(e.CreatedAt),
		e.Note,
	)
	if err != nil {
		return fmt.Errorf("inserting attendance event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.AttendanceEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM attendance_events WHERE id = ?`
	return r.scanEvent(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteEventRepo) FindExact(ctx context.Context, subjectID string, kind domain.EventKind, at time.Time) (*domain.AttendanceEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM attendance_events
		WHERE subject_id = ? AND kind = ? AND occurred_at = ?
		ORDER BY created_at LIMIT 1`
	return r.scanEvent(r.db.QueryRowContext(ctx, query, subjectID, string(kind), formatTime(at)))
}

func (r *SQLiteEventRepo) ListBySubject(ctx context.Context, subjectID string) (domain.EventLog, error) {
	query := `SELECT ` + eventColumns + ` FROM attendance_events
		WHERE subject_id = ? ORDER BY occurred_at, created_at`
	rows, err := r.db.QueryContext(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("listing events by subject: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) ListBySubjectBetween(ctx context.Context, subjectID string, from, to time.Time) (domain.EventLog, error) {
	query := `SELECT ` + eventColumns + ` FROM attendance_events
		WHERE subject_id = ? AND occurred_at >= ? AND occurred_at < ?
		ORDER BY occurred_at, created_at`
	rows, err := r.db.QueryContext(ctx, query, subjectID, formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("listing events by subject between: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) ListSubjects(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT subject_id FROM attendance_events ORDER BY subject_id`)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning subject: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	return subjects, nil
}

func (r *SQLiteEventRepo) scanEvent(row *sql.Row) (*domain.AttendanceEvent, error) {
	var e domain.AttendanceEvent
	var kind, occurredAt, createdAt string

	err := row.Scan(&e.ID, &e.SubjectID, &kind, &occurredAt, &createdAt, &e.Note)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("attendance event: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning attendance event: %w", err)
	}
	if err := populateEvent(&e, kind, occurredAt, createdAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *SQLiteEventRepo) scanEvents(rows *sql.Rows) (domain.EventLog, error) {
	var log domain.EventLog
	for rows.Next() {
		var e domain.AttendanceEvent
		var kind, occurredAt, createdAt string

		if err := rows.Scan(&e.ID, &e.SubjectID, &kind, &occurredAt, &createdAt, &e.Note); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		if err := populateEvent(&e, kind, occurredAt, createdAt); err != nil {
			return nil, err
		}
		log = append(log, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return log, nil
}

// populateEvent fills in parsed fields after scanning raw strings. The kind
// is kept verbatim, even when unrecognised, so the aggregator can reject it.
func populateEvent(e *domain.AttendanceEvent, kind, occurredAt, createdAt string) error {
	e.Kind = domain.EventKind(kind)

	var err error
	if e.Timestamp, err = parseTime(occurredAt); err != nil {
		return fmt.Errorf("parsing occurred_at: %w", err)
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// EventRepo persists the raw attendance log. Events are append-only.
type EventRepo interface {
	Create(ctx context.Context, e *domain.AttendanceEvent) error
	GetByID(ctx context.Context, id string) (*domain.AttendanceEvent, error)
	// FindExact returns the event with the same subject, kind and instant.
	FindExact(ctx context.Context, subjectID string, kind domain.EventKind, at time.Time) (*domain.AttendanceEvent, error)
	// ListBySubject returns the whole log ascending by timestamp.
	ListBySubject(ctx context.Context, subjectID string) (domain.EventLog, error)
	// ListBySubjectBetween returns events with from <= timestamp < to.
	ListBySubjectBetween(ctx context.Context, subjectID string, from, to time.Time) (domain.EventLog, error)
	ListSubjects(ctx context.Context) ([]string, error)
}

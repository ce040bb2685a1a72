package testutil

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/google/uuid"
)

// Day returns an instant in March 2025 (UTC). Fixtures use a fixed month so
// bucket boundaries are predictable: 3 March 2025 is a Monday.
func Day(day, hour, minute int) time.Time {
	return time.Date(2025, time.March, day, hour, minute, 0, 0, time.UTC)
}

// Event options
type EventOption func(*domain.AttendanceEvent)

func WithEventID(id string) EventOption {
	return func(e *domain.AttendanceEvent) {
		e.ID = id
	}
}

func WithEventNote(n string) EventOption {
	return func(e *domain.AttendanceEvent) {
		e.Note = n
	}
}

func WithCreatedAt(t time.Time) EventOption {
	return func(e *domain.AttendanceEvent) {
		e.CreatedAt = t
	}
}

func NewTestEvent(subjectID string, kind domain.EventKind, at time.Time, opts ...EventOption) *domain.AttendanceEvent {
	e := &domain.AttendanceEvent{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Kind:      kind,
		Timestamp: at,
		CreatedAt: at,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestLog builds a log from alternating kind/time pairs for one subject.
func NewTestLog(subjectID string, entries ...any) domain.EventLog {
	var log domain.EventLog
	for i := 0; i+1 < len(entries); i += 2 {
		kind := entries[i].(domain.EventKind)
		at := entries[i+1].(time.Time)
		log = append(log, *NewTestEvent(subjectID, kind, at))
	}
	return log
}

// WorkDay is a standard 09:00-17:00 day with a 12:00-13:00 break: 7h active.
func WorkDay(subjectID string, day int) domain.EventLog {
	return NewTestLog(subjectID,
		domain.EventWorkStart, Day(day, 9, 0),
		domain.EventBreakStart, Day(day, 12, 0),
		domain.EventBreakEnd, Day(day, 13, 0),
		domain.EventWorkEnd, Day(day, 17, 0),
	)
}

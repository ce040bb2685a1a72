package domain

import (
	"fmt"
	"sort"
	"time"
)

// Resolution is the precision of stored instants and of every duration the
// aggregator produces. Boundaries fall on whole seconds, so durations
// between truncated instants are exact multiples of it.
const Resolution = time.Millisecond

// Truncate drops everything below Resolution and the monotonic reading.
func Truncate(t time.Time) time.Time {
	return t.Truncate(Resolution)
}

type EventKind string

const (
	EventWorkStart  EventKind = "work_start"
	EventWorkEnd    EventKind = "work_end"
	EventBreakStart EventKind = "break_start"
	EventBreakEnd   EventKind = "break_end"
)

// ValidEventKinds is the canonical set of accepted event kind strings.
var ValidEventKinds = map[EventKind]bool{
	EventWorkStart:  true,
	EventWorkEnd:    true,
	EventBreakStart: true,
	EventBreakEnd:   true,
}

// ParseEventKind converts a raw kind string into an EventKind.
func ParseEventKind(s string) (EventKind, error) {
	k := EventKind(s)
	if !ValidEventKinds[k] {
		return "", fmt.Errorf("%w: %q", ErrUnknownEventKind, s)
	}
	return k, nil
}

// Valid reports whether k is one of the four known kinds.
func (k EventKind) Valid() bool {
	return ValidEventKinds[k]
}

// OpensInterval reports whether the kind begins a span of active time.
func (k EventKind) OpensInterval() bool {
	return k == EventWorkStart || k == EventBreakEnd
}

// ClosesInterval reports whether the kind ends a span of active time.
func (k EventKind) ClosesInterval() bool {
	return k == EventWorkEnd || k == EventBreakStart
}

// AttendanceEvent is a single immutable entry in a subject's log.
type AttendanceEvent struct {
	ID        string
	SubjectID string
	Kind      EventKind
	Timestamp time.Time
	Note      string
	CreatedAt time.Time
}

// EventLog is the chronological list of events for one subject.
type EventLog []AttendanceEvent

// Sorted returns a copy ordered ascending by timestamp. Events sharing a
// timestamp keep their relative order. The receiver is never modified.
func (l EventLog) Sorted() EventLog {
	out := make(EventLog, len(l))
	copy(out, l)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Validate returns ErrUnknownEventKind for the first event whose kind is
// not recognised.
func (l EventLog) Validate() error {
	for _, e := range l {
		if !e.Kind.Valid() {
			return fmt.Errorf("event %s at %s: %w: %q",
				e.ID, e.Timestamp.Format(time.RFC3339), ErrUnknownEventKind, string(e.Kind))
		}
	}
	return nil
}

// Last returns the most recent event, or false for an empty log.
func (l EventLog) Last() (AttendanceEvent, bool) {
	if len(l) == 0 {
		return AttendanceEvent{}, false
	}
	sorted := l.Sorted()
	return sorted[len(sorted)-1], true
}

package domain

import "fmt"

type Status string

const (
	StatusUnregistered Status = "unregistered"
	StatusWorking      Status = "working"
	StatusOnBreak      Status = "on_break"
)

// ParseStatus converts a raw status string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUnregistered, StatusWorking, StatusOnBreak:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// DeriveStatus maps the most recent event of the log to a status. An empty
// log, a trailing work_end or an unrecognised trailing kind all yield
// StatusUnregistered.
func DeriveStatus(log EventLog) Status {
	last, ok := log.Last()
	if !ok {
		return StatusUnregistered
	}
	switch last.Kind {
	case EventWorkStart, EventBreakEnd:
		return StatusWorking
	case EventBreakStart:
		return StatusOnBreak
	default:
		return StatusUnregistered
	}
}

// NextKinds lists the events that are well-formed successors of status.
func NextKinds(status Status) []EventKind {
	switch status {
	case StatusWorking:
		return []EventKind{EventBreakStart, EventWorkEnd}
	case StatusOnBreak:
		return []EventKind{EventBreakEnd, EventWorkEnd}
	default:
		return []EventKind{EventWorkStart}
	}
}

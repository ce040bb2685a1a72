package aggregator

import "fmt"

// DanglingStartPolicy decides what happens when a start-like event arrives
// while an interval is already open.
type DanglingStartPolicy string

const (
	// LastStartWins discards the earlier open start.
	LastStartWins DanglingStartPolicy = "last_wins"
	// FirstStartWins keeps the earlier open start and ignores the new one.
	FirstStartWins DanglingStartPolicy = "first_wins"
)

// OpenTailPolicy decides whether an interval still open after the last
// event is extended to now.
type OpenTailPolicy string

const (
	// StatusAuthoritative extends the tail only when the caller-supplied
	// status is working.
	StatusAuthoritative OpenTailPolicy = "status"
	// LastEventAuthoritative extends the tail whenever the log leaves an
	// interval open.
	LastEventAuthoritative OpenTailPolicy = "last_event"
)

// Policy bundles the recovery choices for malformed logs.
type Policy struct {
	DanglingStart DanglingStartPolicy
	OpenTail      OpenTailPolicy
}

func DefaultPolicy() Policy {
	return Policy{DanglingStart: LastStartWins, OpenTail: StatusAuthoritative}
}

func (p Policy) Validate() error {
	switch p.DanglingStart {
	case LastStartWins, FirstStartWins:
	default:
		return fmt.Errorf("%w: dangling start policy %q", ErrInvalidPolicy, p.DanglingStart)
	}
	switch p.OpenTail {
	case StatusAuthoritative, LastEventAuthoritative:
	default:
		return fmt.Errorf("%w: open tail policy %q", ErrInvalidPolicy, p.OpenTail)
	}
	return nil
}

// ParseDanglingStartPolicy accepts "last_wins" or "first_wins".
func ParseDanglingStartPolicy(s string) (DanglingStartPolicy, error) {
	p := DanglingStartPolicy(s)
	if p != LastStartWins && p != FirstStartWins {
		return "", fmt.Errorf("%w: dangling start policy %q", ErrInvalidPolicy, s)
	}
	return p, nil
}

// ParseOpenTailPolicy accepts "status" or "last_event".
func ParseOpenTailPolicy(s string) (OpenTailPolicy, error) {
	p := OpenTailPolicy(s)
	if p != StatusAuthoritative && p != LastEventAuthoritative {
		return "", fmt.Errorf("%w: open tail policy %q", ErrInvalidPolicy, s)
	}
	return p, nil
}

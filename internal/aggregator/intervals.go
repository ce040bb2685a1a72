package aggregator

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// BuildIntervals reconstructs the active intervals of a log in a single
// forward pass over a sorted copy. current is the caller's notion of the
// subject's status and only matters for the open tail. An unknown event
// kind fails the whole call.
func BuildIntervals(log domain.EventLog, now time.Time, current domain.Status, policy Policy) ([]domain.ActiveInterval, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}

	var (
		intervals []domain.ActiveInterval
		openStart *time.Time
	)
	now = domain.Truncate(now)
	for _, e := range log.Sorted() {
		ts := domain.Truncate(e.Timestamp)
		switch {
		case e.Kind.OpensInterval():
			if openStart != nil && policy.DanglingStart == FirstStartWins {
				continue
			}
			openStart = &ts
		case e.Kind.ClosesInterval():
			if openStart == nil {
				continue
			}
			intervals = append(intervals, domain.ActiveInterval{Start: *openStart, End: ts})
			openStart = nil
		}
	}

	if openStart != nil && extendsTail(policy.OpenTail, current) {
		end := now
		if end.Before(*openStart) {
			end = *openStart
		}
		intervals = append(intervals, domain.ActiveInterval{Start: *openStart, End: end})
	}
	return intervals, nil
}

func extendsTail(p OpenTailPolicy, current domain.Status) bool {
	if p == LastEventAuthoritative {
		return true
	}
	return current == domain.StatusWorking
}

// TotalDuration sums interval durations without any clipping.
func TotalDuration(intervals []domain.ActiveInterval) time.Duration {
	var total time.Duration
	for _, iv := range intervals {
		total += iv.Duration()
	}
	return total
}

// ClipToRange trims every interval to [from, to) and drops the ones left
// empty.
func ClipToRange(intervals []domain.ActiveInterval, from, to time.Time) []domain.ActiveInterval {
	from, to = domain.Truncate(from), domain.Truncate(to)
	out := make([]domain.ActiveInterval, 0, len(intervals))
	for _, iv := range intervals {
		start, end := iv.Start, iv.End
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		if end.After(start) {
			out = append(out, domain.ActiveInterval{Start: start, End: end})
		}
	}
	return out
}

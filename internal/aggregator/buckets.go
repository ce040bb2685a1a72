package aggregator

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
)

func (g Granularity) String() string { return string(g) }

// BucketStart returns the start of the g-bucket containing t.
func BucketStart(t time.Time, g Granularity, rule domain.BoundaryRule) time.Time {
	switch g {
	case Week:
		return rule.WeekStart(t)
	case Month:
		return rule.MonthStart(t)
	default:
		return rule.DayStart(t)
	}
}

// NextBucket returns the start of the bucket after the one beginning at start.
func NextBucket(start time.Time, g Granularity, rule domain.BoundaryRule) time.Time {
	switch g {
	case Week:
		return rule.NextWeek(start)
	case Month:
		return rule.NextMonth(start)
	default:
		return rule.NextDay(start)
	}
}

// Clip returns the part of iv that falls inside [bucketStart, bucketEnd),
// never negative.
func Clip(iv domain.ActiveInterval, bucketStart, bucketEnd time.Time) time.Duration {
	start := iv.Start
	if bucketStart.After(start) {
		start = bucketStart
	}
	end := iv.End
	if bucketEnd.Before(end) {
		end = bucketEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// Aggregate distributes every interval over the g-buckets it overlaps and
// returns the per-bucket totals ascending by start. A bucket is emitted only
// when some interval contributed positive time to it.
func Aggregate(intervals []domain.ActiveInterval, g Granularity, rule domain.BoundaryRule) ([]domain.BucketTotal, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	switch g {
	case Day, Week, Month:
	default:
		return nil, fmt.Errorf("unknown granularity %q", g)
	}

	totals := make(map[int64]*domain.BucketTotal)
	for _, iv := range intervals {
		if iv.Duration() == 0 {
			continue
		}
		for start := BucketStart(iv.Start, g, rule); start.Before(iv.End); {
			end := NextBucket(start, g, rule)
			if !end.After(start) {
				return nil, fmt.Errorf("%s bucket at %s does not advance", g, start.Format(time.RFC3339))
			}
			if d := Clip(iv, start, end); d > 0 {
				key := start.UnixNano()
				b, ok := totals[key]
				if !ok {
					b = &domain.BucketTotal{Start: start, End: end}
					totals[key] = b
				}
				b.Total += d
			}
			start = end
		}
	}

	out := make([]domain.BucketTotal, 0, len(totals))
	for _, b := range totals {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

package domain

import (
	"fmt"
	"time"
)

// BoundaryRule decides where day, week and month buckets begin.
type BoundaryRule struct {
	// DayResetHour is the local hour (0-23) at which a logical day starts.
	DayResetHour int
	WeekStartDay time.Weekday
	// Location is the single zone boundaries are computed in. Nil means UTC.
	Location *time.Location
}

func DefaultBoundaryRule() BoundaryRule {
	return BoundaryRule{
		DayResetHour: 5,
		WeekStartDay: time.Monday,
		Location:     time.UTC,
	}
}

func (r BoundaryRule) Validate() error {
	if r.DayResetHour < 0 || r.DayResetHour > 23 {
		return fmt.Errorf("%w: day reset hour %d outside 0-23", ErrInvalidBoundaryRule, r.DayResetHour)
	}
	if r.WeekStartDay < time.Sunday || r.WeekStartDay > time.Saturday {
		return fmt.Errorf("%w: week start day %d", ErrInvalidBoundaryRule, int(r.WeekStartDay))
	}
	return nil
}

func (r BoundaryRule) loc() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}

// DayStart returns the start of the logical day containing t.
func (r BoundaryRule) DayStart(t time.Time) time.Time {
	lt := t.In(r.loc())
	y, m, d := lt.Date()
	start := r.wallInstant(y, m, d, r.DayResetHour)
	if start.After(lt) {
		start = r.wallInstant(y, m, d-1, r.DayResetHour)
	}
	return start
}

// WeekStart returns the start of the logical week containing t: the
// logical-day start of the most recent WeekStartDay.
func (r BoundaryRule) WeekStart(t time.Time) time.Time {
	y, m, d := r.logicalDate(r.DayStart(t))
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	back := (int(date.Weekday()) - int(r.WeekStartDay) + 7) % 7
	return r.wallInstant(y, m, d-back, r.DayResetHour)
}

// MonthStart returns midnight of the first calendar day of t's month.
func (r BoundaryRule) MonthStart(t time.Time) time.Time {
	y, m, _ := t.In(r.loc()).Date()
	return r.wallInstant(y, m, 1, 0)
}

// NextDay returns the logical day following the one starting at start.
func (r BoundaryRule) NextDay(start time.Time) time.Time {
	y, m, d := r.logicalDate(start)
	return r.after(start, func(step int) time.Time {
		return r.wallInstant(y, m, d+step, r.DayResetHour)
	})
}

func (r BoundaryRule) NextWeek(start time.Time) time.Time {
	y, m, d := r.logicalDate(start)
	return r.after(start, func(step int) time.Time {
		return r.wallInstant(y, m, d+7*step, r.DayResetHour)
	})
}

func (r BoundaryRule) NextMonth(start time.Time) time.Time {
	y, m, _ := start.In(r.loc()).Date()
	return r.after(start, func(step int) time.Time {
		return r.wallInstant(y, m+time.Month(step), 1, 0)
	})
}

// after returns the first boundary(step), step = 1, 2, ..., later than start.
func (r BoundaryRule) after(start time.Time, boundary func(step int) time.Time) time.Time {
	next := boundary(1)
	for step := 2; !next.After(start); step++ {
		next = boundary(step)
	}
	return next
}

// logicalDate is the calendar date a day or week bucket starting at start
// stands for. A start pushed past the reset hour by a DST gap still maps
// to its own date.
func (r BoundaryRule) logicalDate(start time.Time) (int, time.Month, int) {
	wall := wallClock(start, r.loc()).Add(-time.Duration(r.DayResetHour) * time.Hour)
	return wall.Date()
}

// dstSearchWindow bounds how far a DST gap can move a wall time.
const dstSearchWindow = 6 * time.Hour

// wallInstant returns the first instant at which the clock in the rule's
// location reads y-m-d hour:00. When a DST change skips that wall time it
// returns the instant of the jump, so boundaries never move backwards into
// the previous bucket.
func (r BoundaryRule) wallInstant(y int, m time.Month, d, hour int) time.Time {
	loc := r.loc()
	t := time.Date(y, m, d, hour, 0, 0, 0, loc)
	want := time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
	if wallClock(t, loc).Equal(want) {
		return t
	}

	// Zone transitions happen on whole seconds; wallClock(lo) < want <= wallClock(hi).
	lo, hi := t.Add(-dstSearchWindow), t.Add(dstSearchWindow)
	for hi.Sub(lo) > time.Second {
		mid := lo.Add((hi.Sub(lo) / 2).Truncate(time.Second))
		if wallClock(mid, loc).Before(want) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// wallClock reads t's local date and time in loc as a UTC instant, so wall
// times can be compared directly.
func wallClock(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), lt.Hour(), lt.Minute(), lt.Second(), lt.Nanosecond(), time.UTC)
}

package aggregator

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClip(t *testing.T) {
	bucketStart, bucketEnd := at(3, 5, 0), at(4, 5, 0)

	tests := []struct {
		name string
		iv   domain.ActiveInterval
		want time.Duration
	}{
		{"inside", domain.ActiveInterval{Start: at(3, 9, 0), End: at(3, 10, 0)}, time.Hour},
		{"straddles end", domain.ActiveInterval{Start: at(3, 23, 0), End: at(4, 6, 0)}, 6 * time.Hour},
		{"straddles start", domain.ActiveInterval{Start: at(3, 4, 0), End: at(3, 6, 0)}, time.Hour},
		{"covers bucket", domain.ActiveInterval{Start: at(2, 0, 0), End: at(5, 0, 0)}, 24 * time.Hour},
		{"before", domain.ActiveInterval{Start: at(2, 9, 0), End: at(2, 10, 0)}, 0},
		{"after", domain.ActiveInterval{Start: at(4, 5, 0), End: at(4, 6, 0)}, 0},
		{"inverted", domain.ActiveInterval{Start: at(3, 10, 0), End: at(3, 9, 0)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clip(tt.iv, bucketStart, bucketEnd))
		})
	}
}

func TestAggregate_DailyClipsAtResetHour(t *testing.T) {
	rule := domain.DefaultBoundaryRule()
	ivs := []domain.ActiveInterval{{Start: at(3, 23, 0), End: at(4, 6, 0)}}

	daily, err := Aggregate(ivs, Day, rule)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, at(3, 5, 0), daily[0].Start)
	assert.Equal(t, at(4, 5, 0), daily[0].End)
	assert.Equal(t, 6*time.Hour, daily[0].Total)
	assert.Equal(t, at(4, 5, 0), daily[1].Start)
	assert.Equal(t, time.Hour, daily[1].Total)
}

func TestAggregate_EarlyMorningBelongsToPreviousDay(t *testing.T) {
	rule := domain.DefaultBoundaryRule()
	ivs := []domain.ActiveInterval{{Start: at(4, 2, 0), End: at(4, 4, 0)}}

	daily, err := Aggregate(ivs, Day, rule)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, at(3, 5, 0), daily[0].Start)
	assert.Equal(t, 2*time.Hour, daily[0].Total)
}

func TestAggregate_WeeklyClipsAtWeekStart(t *testing.T) {
	rule := domain.DefaultBoundaryRule()
	// Monday 10 March 03:00 still belongs to the logical Sunday.
	ivs := []domain.ActiveInterval{{Start: at(10, 3, 0), End: at(10, 6, 0)}}

	weekly, err := Aggregate(ivs, Week, rule)
	require.NoError(t, err)
	require.Len(t, weekly, 2)
	assert.Equal(t, at(3, 5, 0), weekly[0].Start)
	assert.Equal(t, 2*time.Hour, weekly[0].Total)
	assert.Equal(t, at(10, 5, 0), weekly[1].Start)
	assert.Equal(t, time.Hour, weekly[1].Total)
}

func TestAggregate_WeekStartDayIsConfigurable(t *testing.T) {
	rule := domain.DefaultBoundaryRule()
	rule.WeekStartDay = time.Sunday
	ivs := []domain.ActiveInterval{{Start: at(5, 12, 0), End: at(5, 13, 0)}}

	weekly, err := Aggregate(ivs, Week, rule)
	require.NoError(t, err)
	require.Len(t, weekly, 1)
	assert.Equal(t, at(2, 5, 0), weekly[0].Start)
	assert.Equal(t, at(9, 5, 0), weekly[0].End)
}

func TestAggregate_MonthlyUsesCalendarBoundary(t *testing.T) {
	rule := domain.DefaultBoundaryRule()
	ivs := []domain.ActiveInterval{{Start: at(31, 22, 0), End: time.Date(2025, time.April, 1, 2, 0, 0, 0, time.UTC)}}

	monthly, err := Aggregate(ivs, Month, rule)
	require.NoError(t, err)
	require.Len(t, monthly, 2)
	assert.Equal(t, at(1, 0, 0), monthly[0].Start)
	assert.Equal(t, 2*time.Hour, monthly[0].Total)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), monthly[1].Start)
	assert.Equal(t, 2*time.Hour, monthly[1].Total)

	daily, err := Aggregate(ivs, Day, rule)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, 4*time.Hour, daily[0].Total)
}

func TestAggregate_SortedAndMerged(t *testing.T) {
	rule := domain.DefaultBoundaryRule()
	ivs := []domain.ActiveInterval{
		{Start: at(5, 9, 0), End: at(5, 10, 0)},
		{Start: at(3, 9, 0), End: at(3, 10, 0)},
		{Start: at(3, 14, 0), End: at(3, 16, 0)},
	}

	daily, err := Aggregate(ivs, Day, rule)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, at(3, 5, 0), daily[0].Start)
	assert.Equal(t, 3*time.Hour, daily[0].Total)
	assert.Equal(t, at(5, 5, 0), daily[1].Start)
	assert.Equal(t, time.Hour, daily[1].Total)
}

func TestAggregate_ZeroLengthIntervalsOmitted(t *testing.T) {
	ivs := []domain.ActiveInterval{{Start: at(3, 9, 0), End: at(3, 9, 0)}}

	for _, g := range []Granularity{Day, Week, Month} {
		out, err := Aggregate(ivs, g, domain.DefaultBoundaryRule())
		require.NoError(t, err)
		assert.Empty(t, out, g.String())
	}
}

func TestAggregate_InvalidInputs(t *testing.T) {
	_, err := Aggregate(nil, Day, domain.BoundaryRule{DayResetHour: 24})
	assert.ErrorIs(t, err, domain.ErrInvalidBoundaryRule)

	_, err = Aggregate(nil, Granularity("year"), domain.DefaultBoundaryRule())
	assert.Error(t, err)
}

func TestAggregate_NonUTCLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	rule := domain.BoundaryRule{DayResetHour: 5, WeekStartDay: time.Monday, Location: loc}
	// 20:00 UTC on the 3rd is 05:00 on the 4th in UTC+9.
	ivs := []domain.ActiveInterval{{Start: at(3, 19, 0), End: at(3, 21, 0)}}

	daily, err := Aggregate(ivs, Day, rule)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.True(t, daily[0].End.Equal(at(3, 20, 0)))
	assert.Equal(t, time.Hour, daily[0].Total)
	assert.Equal(t, time.Hour, daily[1].Total)
}

func TestAggregate_DailyAcrossSkippedMidnight(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)
	rule := domain.BoundaryRule{DayResetHour: 0, WeekStartDay: time.Monday, Location: santiago}

	// 2023-09-02 12:00 -04 for 48h; 3 September has no 00:00.
	start := time.Date(2023, 9, 2, 16, 0, 0, 0, time.UTC)
	ivs := []domain.ActiveInterval{{Start: start, End: start.Add(48 * time.Hour)}}

	daily, err := Aggregate(ivs, Day, rule)
	require.NoError(t, err)
	require.Len(t, daily, 3)
	assert.Equal(t, "2023-09-02", daily[0].Start.Format(time.DateOnly))
	assert.Equal(t, "2023-09-03", daily[1].Start.Format(time.DateOnly))
	assert.Equal(t, "2023-09-04", daily[2].Start.Format(time.DateOnly))
	assert.Equal(t, 12*time.Hour, daily[0].Total)
	assert.Equal(t, 23*time.Hour, daily[1].Total, "the short day loses its skipped hour")
	assert.Equal(t, 13*time.Hour, daily[2].Total)
	assert.Equal(t, 48*time.Hour, domain.SumBuckets(daily))
}

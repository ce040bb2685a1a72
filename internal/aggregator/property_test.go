package aggregator

import (
	"math/rand"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []domain.EventKind{
	domain.EventWorkStart, domain.EventWorkEnd, domain.EventBreakStart, domain.EventBreakEnd,
}

// randomLog builds a possibly malformed, unsorted log spread over ~90 days.
func randomLog(rng *rand.Rand, base time.Time) domain.EventLog {
	n := rng.Intn(60)
	log := make(domain.EventLog, n)
	for i := range log {
		offset := time.Duration(rng.Int63n(int64(90 * 24 * time.Hour)))
		log[i] = domain.AttendanceEvent{
			ID:        string(rune('a' + i%26)),
			Kind:      allKinds[rng.Intn(len(allKinds))],
			Timestamp: base.Add(offset),
		}
	}
	return log
}

func randomRule(rng *rand.Rand) domain.BoundaryRule {
	return domain.BoundaryRule{
		DayResetHour: rng.Intn(24),
		WeekStartDay: time.Weekday(rng.Intn(7)),
		Location:     time.UTC,
	}
}

// TestAggregate_Invariants_BucketSumsMatchTotal property-tests that every
// granularity redistributes exactly the unclipped total.
func TestAggregate_Invariants_BucketSumsMatchTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

	for trial := 0; trial < 200; trial++ {
		log := randomLog(rng, base)
		rule := randomRule(rng)
		now := base.Add(91 * 24 * time.Hour)
		status := domain.DeriveStatus(log)

		ivs, err := BuildIntervals(log, now, status, DefaultPolicy())
		require.NoError(t, err)
		total := TotalDuration(ivs)

		for _, g := range []Granularity{Day, Week, Month} {
			buckets, err := Aggregate(ivs, g, rule)
			require.NoError(t, err)
			assert.Equal(t, total, domain.SumBuckets(buckets),
				"trial %d: %s buckets must sum to the total", trial, g)
			for i, b := range buckets {
				assert.Greater(t, b.Total, time.Duration(0), "trial %d: %s bucket %d must be positive", trial, g, i)
				if i > 0 {
					assert.True(t, buckets[i-1].Start.Before(b.Start), "trial %d: %s buckets must ascend", trial, g)
				}
			}
		}
	}
}

// Zones whose DST changes fall at or near common reset hours: Santiago at
// midnight, New York and London in the small hours, Lord Howe by 30 minutes.
var propertyZones = []string{"UTC", "America/Santiago", "America/New_York", "Europe/London", "Australia/Lord_Howe"}

// Bases that put the ~90-day random logs across both yearly transitions.
var propertyBases = []time.Time{
	time.Date(2023, time.August, 20, 0, 0, 0, 0, time.UTC),
	time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
}

func TestAggregate_Invariants_AcrossZonesAndResetHours(t *testing.T) {
	rng := rand.New(rand.NewSource(2023))

	for _, name := range propertyZones {
		loc, err := time.LoadLocation(name)
		require.NoError(t, err)

		for hour := 0; hour < 24; hour++ {
			for _, base := range propertyBases {
				rule := domain.BoundaryRule{DayResetHour: hour, WeekStartDay: time.Weekday(rng.Intn(7)), Location: loc}
				log := randomLog(rng, base)
				now := base.Add(91 * 24 * time.Hour)

				ivs, err := BuildIntervals(log, now, domain.DeriveStatus(log), DefaultPolicy())
				require.NoError(t, err)
				total := TotalDuration(ivs)

				for _, g := range []Granularity{Day, Week, Month} {
					buckets, err := Aggregate(ivs, g, rule)
					require.NoError(t, err, "%s reset %d %s", name, hour, g)
					assert.Equal(t, total, domain.SumBuckets(buckets), "%s reset %d: %s buckets must sum to the total", name, hour, g)

					for i, b := range buckets {
						assert.True(t, b.End.After(b.Start), "%s reset %d: empty %s bucket", name, hour, g)
						if i > 0 {
							assert.False(t, b.Start.Before(buckets[i-1].End), "%s reset %d: %s buckets overlap", name, hour, g)
						}
						if g == Day {
							length := b.End.Sub(b.Start)
							assert.True(t, length >= 22*time.Hour && length <= 26*time.Hour,
								"%s reset %d: day %s lasts %s", name, hour, b.Start, length)
						}
					}
				}
			}
		}
	}
}

func TestBuildIntervals_Invariants_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

	for trial := 0; trial < 100; trial++ {
		log := randomLog(rng, base)
		now := base.Add(time.Duration(rng.Int63n(int64(100 * 24 * time.Hour))))
		status := domain.DeriveStatus(log)

		first, err := BuildIntervals(log, now, status, DefaultPolicy())
		require.NoError(t, err)
		second, err := BuildIntervals(log, now, status, DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, first, second, "trial %d", trial)
	}
}

// TestBuildIntervals_Invariants_ClosingEventNeverDecreasesTotal appends a
// closing event at now to a random log and checks the total does not drop.
func TestBuildIntervals_Invariants_ClosingEventNeverDecreasesTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	base := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

	for trial := 0; trial < 200; trial++ {
		log := randomLog(rng, base)
		now := base.Add(90*24*time.Hour + time.Duration(rng.Int63n(int64(24*time.Hour))))

		before, err := BuildIntervals(log, now, domain.DeriveStatus(log), DefaultPolicy())
		require.NoError(t, err)

		closing := domain.EventWorkEnd
		if rng.Intn(2) == 0 {
			closing = domain.EventBreakStart
		}
		extended := append(append(domain.EventLog(nil), log...), domain.AttendanceEvent{Kind: closing, Timestamp: now})
		after, err := BuildIntervals(extended, now, domain.DeriveStatus(extended), DefaultPolicy())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, TotalDuration(after), TotalDuration(before), "trial %d", trial)
	}
}

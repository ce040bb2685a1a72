package domain

import "time"

// ActiveInterval is a half-open span [Start, End) counted as active time.
type ActiveInterval struct {
	Start time.Time
	End   time.Time
}

// Duration is End-Start, clamped to zero.
func (iv ActiveInterval) Duration() time.Duration {
	d := iv.End.Sub(iv.Start)
	if d < 0 {
		return 0
	}
	return d
}

// BucketTotal is the active time attributed to one bucket [Start, End).
type BucketTotal struct {
	Start time.Time
	End   time.Time
	Total time.Duration
}

// SummaryReport holds per-bucket totals for the three granularities
// together with the overall total.
type SummaryReport struct {
	Daily   []BucketTotal
	Weekly  []BucketTotal
	Monthly []BucketTotal
	Total   time.Duration
}

// SumBuckets adds up the totals of a bucket list.
func SumBuckets(buckets []BucketTotal) time.Duration {
	var sum time.Duration
	for _, b := range buckets {
		sum += b.Total
	}
	return sum
}

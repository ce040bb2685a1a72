package repository

import "time"

// timeLayout is used for every stored instant. It sorts lexically because
// values are always written in UTC with fixed fractional digits.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err == nil {
		return t, nil
	}
	// Rows written by hand or by older versions may use plain RFC3339.
	return time.Parse(time.RFC3339Nano, s)
}

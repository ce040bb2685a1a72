package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0m"},
		{-5 * time.Minute, "0m"},
		{45 * time.Minute, "45m"},
		{time.Hour, "1h00m"},
		{7*time.Hour + 5*time.Minute, "7h05m"},
		{29*time.Minute + 40*time.Second, "30m"},
		{100 * time.Hour, "100h00m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), "FormatDuration(%s)", tt.in)
	}
}

func TestSince(t *testing.T) {
	now := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "just now", Since(now.Add(-20*time.Second), now))
	assert.Equal(t, "2h10m ago", Since(now.Add(-130*time.Minute), now))
}

func TestClock_UsesLocation(t *testing.T) {
	ts := time.Date(2025, time.March, 3, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*3600)
	assert.Equal(t, "Mon 03 Mar 23:30", Clock(ts, nil))
	assert.Equal(t, "Tue 04 Mar 08:30", Clock(ts, tokyo))
}

func TestRenderTable_AlignRight(t *testing.T) {
	out := RenderTable([]string{"DAY", "ACTIVE"}, [][]string{
		{"Mon", "7h00m"},
		{"Tue", "45m"},
	}, AlignRight(1))

	assert.Contains(t, out, "Mon   7h00m\n")
	assert.Contains(t, out, "Tue     45m\n")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

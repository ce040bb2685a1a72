package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/punchclock/internal/contract"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatStatus_WorkingWithLog(t *testing.T) {
	start := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	resp := &contract.StatusResponse{
		Subject:     "alice",
		GeneratedAt: start.Add(2 * time.Hour),
		Status:      domain.StatusWorking,
		Log: domain.EventLog{
			{Kind: domain.EventWorkStart, Timestamp: start, Note: "standup"},
		},
		NextKinds:   domain.NextKinds(domain.StatusWorking),
		OpenSince:   &start,
		ActiveToday: 2 * time.Hour,
	}

	out := FormatStatus(resp, time.UTC)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "● WORKING")
	assert.Contains(t, out, "2h00m ago")
	assert.Contains(t, out, "standup")
	assert.Contains(t, out, "break_start")
	assert.Contains(t, out, "work_end")
}

func TestFormatStatus_EmptyLog(t *testing.T) {
	resp := &contract.StatusResponse{
		Subject:   "bob",
		Status:    domain.StatusUnregistered,
		NextKinds: domain.NextKinds(domain.StatusUnregistered),
	}

	out := FormatStatus(resp, nil)
	assert.Contains(t, out, "● UNREGISTERED")
	assert.Contains(t, out, "No events recorded.")
	assert.NotContains(t, out, "Since")
}

func TestFormatLog_UnknownKindFlagged(t *testing.T) {
	out := FormatLog(domain.EventLog{
		{Kind: "Lunch", Timestamp: time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)},
	}, time.UTC)
	assert.Contains(t, out, "Lunch?")
}

func TestFormatStatusLine(t *testing.T) {
	out := FormatStatusLine(&contract.StatusResponse{Status: domain.StatusOnBreak, ActiveToday: 90 * time.Minute})
	assert.Contains(t, out, "● ON BREAK")
	assert.Contains(t, out, "1h30m")
}

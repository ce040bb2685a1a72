package contract

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// Event is the boundary shape of one log entry.
type Event struct {
	Kind      string `json:"kind"`
	Timestamp string `json:"timestamp"`
}

type StatusResult struct {
	CurrentStatus string  `json:"currentStatus"`
	AttendanceLog []Event `json:"attendanceLog"`
}

type DailyTotal struct {
	Date    string `json:"date"`
	TotalMs int64  `json:"totalMs"`
}

type WeeklyTotal struct {
	WeekStart string `json:"weekStart"`
	TotalMs   int64  `json:"totalMs"`
}

type MonthlyTotal struct {
	Month   string `json:"month"`
	TotalMs int64  `json:"totalMs"`
}

type SummaryResult struct {
	Daily   []DailyTotal   `json:"daily"`
	Weekly  []WeeklyTotal  `json:"weekly"`
	Monthly []MonthlyTotal `json:"monthly"`
	Total   int64          `json:"total"`
}

// ParseEvent decodes one boundary event. Unknown kinds and timestamps that
// are not ISO-8601 instants are rejected.
func ParseEvent(data []byte) (domain.AttendanceEvent, error) {
	var raw Event
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.AttendanceEvent{}, fmt.Errorf("decoding event: %w", err)
	}
	return raw.ToDomain()
}

func (e Event) ToDomain() (domain.AttendanceEvent, error) {
	kind, err := domain.ParseEventKind(e.Kind)
	if err != nil {
		return domain.AttendanceEvent{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return domain.AttendanceEvent{}, fmt.Errorf("parsing event timestamp: %w", err)
	}
	return domain.AttendanceEvent{Kind: kind, Timestamp: ts}, nil
}

func EventFromDomain(e domain.AttendanceEvent) Event {
	return Event{Kind: string(e.Kind), Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano)}
}

func NewStatusResult(resp *StatusResponse) StatusResult {
	out := StatusResult{
		CurrentStatus: string(resp.Status),
		AttendanceLog: make([]Event, 0, len(resp.Log)),
	}
	for _, e := range resp.Log {
		out.AttendanceLog = append(out.AttendanceLog, EventFromDomain(e))
	}
	return out
}

// NewSummaryResult converts a report to its wire form. Bucket dates are
// written in the location the buckets were computed in.
func NewSummaryResult(report domain.SummaryReport) SummaryResult {
	out := SummaryResult{
		Daily:   make([]DailyTotal, 0, len(report.Daily)),
		Weekly:  make([]WeeklyTotal, 0, len(report.Weekly)),
		Monthly: make([]MonthlyTotal, 0, len(report.Monthly)),
		Total:   report.Total.Milliseconds(),
	}
	for _, b := range report.Daily {
		out.Daily = append(out.Daily, DailyTotal{Date: b.Start.Format(time.DateOnly), TotalMs: b.Total.Milliseconds()})
	}
	for _, b := range report.Weekly {
		out.Weekly = append(out.Weekly, WeeklyTotal{WeekStart: b.Start.Format(time.DateOnly), TotalMs: b.Total.Milliseconds()})
	}
	for _, b := range report.Monthly {
		out.Monthly = append(out.Monthly, MonthlyTotal{Month: b.Start.Format("2006-01"), TotalMs: b.Total.Milliseconds()})
	}
	return out
}

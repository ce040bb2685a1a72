package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/punchclock/internal/contract"
	"github.com/alexanderramin/punchclock/internal/domain"
)

// FormatStatus renders the current status card followed by the log.
func FormatStatus(resp *contract.StatusResponse, loc *time.Location) string {
	var b strings.Builder

	b.WriteString(KeyValue("Subject", Bold(resp.Subject)))
	b.WriteString(KeyValue("Status", StatusIndicator(resp.Status)))
	if resp.OpenSince != nil {
		b.WriteString(KeyValue("Since", Clock(*resp.OpenSince, loc)+" "+Dim("("+Since(*resp.OpenSince, resp.GeneratedAt)+")")))
	}
	b.WriteString(KeyValue("Today", FormatDuration(resp.ActiveToday)))
	b.WriteString(KeyValue("Next", formatKinds(resp.NextKinds)))

	b.WriteString("\n")
	if len(resp.Log) == 0 {
		b.WriteString(Dim("No events recorded.") + "\n")
	} else {
		b.WriteString(FormatLog(resp.Log, loc))
	}

	return RenderBox("Status", b.String())
}

// FormatStatusLine is the one-line form used after a punch.
func FormatStatusLine(resp *contract.StatusResponse) string {
	return StatusIndicator(resp.Status) + Dim("  today ") + FormatDuration(resp.ActiveToday)
}

// FormatLog renders events as a table in timestamp order.
func FormatLog(log domain.EventLog, loc *time.Location) string {
	rows := make([][]string, 0, len(log))
	for _, e := range log.Sorted() {
		note := e.Note
		if note == "" {
			note = Dim("--")
		}
		rows = append(rows, []string{Clock(e.Timestamp, loc), KindLabel(e.Kind), note})
	}
	return RenderTable([]string{"WHEN", "EVENT", "NOTE"}, rows)
}

func formatKinds(kinds []domain.EventKind) string {
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, KindLabel(k))
	}
	return strings.Join(parts, Dim(" | "))
}

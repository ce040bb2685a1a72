package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/punchclock/internal/contract"
	"github.com/alexanderramin/punchclock/internal/domain"
)

// FormatSummary renders daily, weekly and monthly totals as three tables.
func FormatSummary(resp *contract.SummaryResponse) string {
	report := resp.Report
	var b strings.Builder

	b.WriteString(KeyValue("Subject", Bold(resp.Subject)))
	b.WriteString(KeyValue("Status", StatusIndicator(resp.Status)))
	b.WriteString(KeyValue("Total", Bold(FormatDuration(report.Total))))

	sections := []struct {
		title   string
		label   string
		layout  string
		buckets []domain.BucketTotal
	}{
		{"Daily", "DAY", "Mon 2006-01-02", report.Daily},
		{"Weekly", "WEEK OF", time.DateOnly, report.Weekly},
		{"Monthly", "MONTH", "January 2006", report.Monthly},
	}
	for _, s := range sections {
		b.WriteString("\n" + Header(s.title) + "\n")
		if len(s.buckets) == 0 {
			b.WriteString(Dim("No active time.") + "\n")
			continue
		}
		rows := make([][]string, 0, len(s.buckets))
		for _, bucket := range s.buckets {
			rows = append(rows, []string{bucket.Start.Format(s.layout), FormatDuration(bucket.Total)})
		}
		b.WriteString(RenderTable([]string{s.label, "ACTIVE"}, rows, AlignRight(1)))
	}

	return RenderBox("Summary", b.String())
}

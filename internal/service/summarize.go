package service

import (
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/aggregator"
	"github.com/alexanderramin/punchclock/internal/domain"
)

// Summarize builds the day, week and month report for one subject's log.
// current is the authoritative status used to decide whether a trailing
// open interval runs until now. The result satisfies
// Total == Σ Daily == Σ Weekly == Σ Monthly.
func Summarize(log domain.EventLog, current domain.Status, now time.Time, settings Settings) (*domain.SummaryReport, error) {
	intervals, err := aggregator.BuildIntervals(log, now, current, settings.Policy)
	if err != nil {
		return nil, err
	}
	return summarizeIntervals(intervals, settings.Rule)
}

// SummarizeRange is Summarize restricted to [from, to).
func SummarizeRange(log domain.EventLog, current domain.Status, now, from, to time.Time, settings Settings) (*domain.SummaryReport, error) {
	intervals, err := aggregator.BuildIntervals(log, now, current, settings.Policy)
	if err != nil {
		return nil, err
	}
	return summarizeIntervals(aggregator.ClipToRange(intervals, from, to), settings.Rule)
}

func summarizeIntervals(intervals []domain.ActiveInterval, rule domain.BoundaryRule) (*domain.SummaryReport, error) {
	report := &domain.SummaryReport{Total: aggregator.TotalDuration(intervals)}

	var err error
	if report.Daily, err = aggregator.Aggregate(intervals, aggregator.Day, rule); err != nil {
		return nil, fmt.Errorf("aggregating daily: %w", err)
	}
	if report.Weekly, err = aggregator.Aggregate(intervals, aggregator.Week, rule); err != nil {
		return nil, fmt.Errorf("aggregating weekly: %w", err)
	}
	if report.Monthly, err = aggregator.Aggregate(intervals, aggregator.Month, rule); err != nil {
		return nil, fmt.Errorf("aggregating monthly: %w", err)
	}
	return report, nil
}

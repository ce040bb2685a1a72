package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/contract"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/repository"
)

type summaryService struct {
	events   repository.EventRepo
	settings Settings
	observer UseCaseObserver
}

func NewSummaryService(events repository.EventRepo, settings Settings, observers ...UseCaseObserver) SummaryService {
	return &summaryService{events: events, settings: settings, observer: combineObservers(observers)}
}

func (s *summaryService) GetSummary(ctx context.Context, req contract.SummaryRequest) (resp *contract.SummaryResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"subject": req.Subject}
	defer observe(ctx, s.observer, "get-summary", startedAt, fields, &err)

	if req.Subject == "" {
		return nil, ErrSubjectRequired
	}
	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		return nil, &contract.SummaryError{
			Code:    contract.SummaryErrInvalidRange,
			Message: fmt.Sprintf("from %s must be before to %s", req.From.Format(time.RFC3339), req.To.Format(time.RFC3339)),
		}
	}
	now := startedAt
	if req.Now != nil {
		now = *req.Now
	}

	log, err := s.events.ListBySubject(ctx, req.Subject)
	if err != nil {
		return nil, fmt.Errorf("loading event log: %w", err)
	}
	fields["events"] = len(log)

	status := domain.DeriveStatus(log)
	if req.StatusOverride != nil {
		status = *req.StatusOverride
		fields["status_override"] = string(status)
	}

	var report *domain.SummaryReport
	if req.From != nil || req.To != nil {
		from, to := summaryRange(req, log, now)
		report, err = SummarizeRange(log, status, now, from, to, s.settings)
	} else {
		report, err = Summarize(log, status, now, s.settings)
	}
	if err != nil {
		return nil, err
	}
	fields["total_ms"] = report.Total.Milliseconds()

	return &contract.SummaryResponse{
		Subject:     req.Subject,
		GeneratedAt: now,
		Status:      status,
		Report:      *report,
	}, nil
}

// summaryRange fills an open end of the requested range: the earliest
// event for a missing From, and the later of now and the last event for a
// missing To.
func summaryRange(req contract.SummaryRequest, log domain.EventLog, now time.Time) (time.Time, time.Time) {
	sorted := log.Sorted()

	from := now
	if len(sorted) > 0 {
		from = sorted[0].Timestamp
	}
	if req.From != nil {
		from = *req.From
	}

	to := now
	if len(sorted) > 0 && sorted[len(sorted)-1].Timestamp.After(to) {
		to = sorted[len(sorted)-1].Timestamp
	}
	if req.To != nil {
		to = *req.To
	}
	return from, to
}

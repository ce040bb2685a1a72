package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/aggregator"
	"github.com/alexanderramin/punchclock/internal/contract"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/repository"
)

type statusService struct {
	events   repository.EventRepo
	settings Settings
	observer UseCaseObserver
}

func NewStatusService(events repository.EventRepo, settings Settings, observers ...UseCaseObserver) StatusService {
	return &statusService{events: events, settings: settings, observer: combineObservers(observers)}
}

func (s *statusService) GetStatus(ctx context.Context, req contract.StatusRequest) (resp *contract.StatusResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"subject": req.Subject}
	defer observe(ctx, s.observer, "get-status", startedAt, fields, &err)

	if req.Subject == "" {
		return nil, ErrSubjectRequired
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
	fields["status"] = string(status)

	resp = &contract.StatusResponse{
		Subject:     req.Subject,
		GeneratedAt: now,
		Status:      status,
		Log:         log,
		NextKinds:   domain.NextKinds(status),
	}

	// A log holding an unrecognized kind still has a status; it just
	// has no measurable time.
	intervals, ivErr := aggregator.BuildIntervals(log, now, status, s.settings.Policy)
	if ivErr != nil {
		fields["intervals_error"] = ivErr.Error()
		return resp, nil
	}
	resp.ActiveToday = activeToday(intervals, now, s.settings.Rule)
	if status == domain.StatusWorking && len(intervals) > 0 {
		open := intervals[len(intervals)-1].Start
		resp.OpenSince = &open
	}
	return resp, nil
}

func activeToday(intervals []domain.ActiveInterval, now time.Time, rule domain.BoundaryRule) time.Duration {
	start := rule.DayStart(now)
	end := rule.NextDay(start)
	var total time.Duration
	for _, iv := range intervals {
		total += aggregator.Clip(iv, start, end)
	}
	return total
}

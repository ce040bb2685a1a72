package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/punchclock/internal/contract"
	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/repository"
	"github.com/google/uuid"
)

type eventService struct {
	events   repository.EventRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewEventService(events repository.EventRepo, uow db.UnitOfWork, observers ...UseCaseObserver) EventService {
	return &eventService{events: events, uow: uow, observer: combineObservers(observers)}
}

// Record appends one event to the subject's log. Recording the same kind at
// the same instant twice returns the stored event instead of a duplicate.
func (s *eventService) Record(ctx context.Context, req contract.RecordEventRequest) (event *domain.AttendanceEvent, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"subject": req.Subject, "kind": string(req.Kind)}
	defer observe(ctx, s.observer, "record-event", startedAt, fields, &err)

	if req.Subject == "" {
		return nil, ErrSubjectRequired
	}
	if _, err = domain.ParseEventKind(string(req.Kind)); err != nil {
		return nil, err
	}

	at := domain.Truncate(startedAt)
	if req.At != nil {
		at = domain.Truncate(req.At.UTC())
	}
	candidate := &domain.AttendanceEvent{
		ID:        uuid.New().String(),
		SubjectID: req.Subject,
		Kind:      req.Kind,
		Timestamp: at,
		Note:      req.Note,
		CreatedAt: startedAt,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEvents := repository.NewSQLiteEventRepo(tx)

		existing, findErr := txEvents.FindExact(ctx, req.Subject, req.Kind, at)
		if findErr == nil {
			event = existing
			fields["duplicate"] = true
			return nil
		}
		if !errors.Is(findErr, repository.ErrNotFound) {
			return findErr
		}

		if err := txEvents.Create(ctx, candidate); err != nil {
			return err
		}
		event = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, subject string) (domain.EventLog, error) {
	if subject == "" {
		return nil, ErrSubjectRequired
	}
	return s.events.ListBySubject(ctx, subject)
}

func (s *eventService) Subjects(ctx context.Context) ([]string, error) {
	return s.events.ListSubjects(ctx)
}

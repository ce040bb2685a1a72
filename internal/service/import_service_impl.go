package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/importer"
	"github.com/alexanderramin/punchclock/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: combineObservers(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path, subject string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, schema, subject)
}

// ImportSchema writes every event of schema or none of them. A non-empty
// subject replaces the one in the file.
func (s *importService) ImportSchema(ctx context.Context, schema *importer.ImportSchema, subject string) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"events": len(schema.AttendanceLog)}
	defer observe(ctx, s.observer, "import-events", startedAt, fields, &err)

	if subject != "" {
		schema.Subject = subject
	}
	fields["subject"] = schema.Subject

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	log, err := importer.Convert(schema, startedAt)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	result = &ImportResult{Subject: schema.Subject}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		events := repository.NewSQLiteEventRepo(tx)
		for i := range log {
			e := &log[i]
			_, findErr := events.FindExact(ctx, e.SubjectID, e.Kind, e.Timestamp)
			if findErr == nil {
				result.Skipped++
				continue
			}
			if !errors.Is(findErr, repository.ErrNotFound) {
				return findErr
			}
			if err := events.Create(ctx, e); err != nil {
				return fmt.Errorf("creating event %d: %w", i, err)
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["imported"] = result.Imported
	fields["skipped"] = result.Skipped
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return errors.New(msg)
}

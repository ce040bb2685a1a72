package service

import (
	"context"

	"github.com/alexanderramin/punchclock/internal/aggregator"
	"github.com/alexanderramin/punchclock/internal/contract"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/importer"
)

type EventService interface {
	Record(ctx context.Context, req contract.RecordEventRequest) (*domain.AttendanceEvent, error)
	List(ctx context.Context, subject string) (domain.EventLog, error)
	Subjects(ctx context.Context) ([]string, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
}

type SummaryService interface {
	GetSummary(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error)
}

// Settings carries the bucket and recovery configuration shared by the
// status and summary services.
type Settings struct {
	Rule   domain.BoundaryRule
	Policy aggregator.Policy
}

func DefaultSettings() Settings {
	return Settings{Rule: domain.DefaultBoundaryRule(), Policy: aggregator.DefaultPolicy()}
}

// ImportResult reports how many events an import wrote.
type ImportResult struct {
	Subject  string
	Imported int
	// Skipped counts events already present with the same kind and instant.
	Skipped int
}

type ImportService interface {
	ImportFile(ctx context.Context, path, subject string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema, subject string) (*ImportResult, error)
}

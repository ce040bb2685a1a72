package app

import (
	"context"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

type StatusUseCase interface {
	GetStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error)
}

type SummaryUseCase interface {
	GetSummary(ctx context.Context, req SummaryRequest) (*SummaryResponse, error)
}

type RecordEventUseCase interface {
	Record(ctx context.Context, req RecordEventRequest) (*domain.AttendanceEvent, error)
}

// RecordEventRequest describes one punch. A nil At means now.
type RecordEventRequest struct {
	Subject string
	Kind    domain.EventKind
	At      *time.Time
	Note    string
}

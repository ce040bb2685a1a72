package app

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

type StatusRequest struct {
	Subject string
	Now     *time.Time
}

func NewStatusRequest(subject string) StatusRequest {
	return StatusRequest{Subject: subject}
}

type StatusResponse struct {
	Subject     string
	GeneratedAt time.Time
	Status      domain.Status
	Log         domain.EventLog
	// NextKinds are the well-formed events that may follow Status.
	NextKinds []domain.EventKind
	// OpenSince is the start of the interval still open, if any.
	OpenSince *time.Time
	// ActiveToday is the active time inside the current logical day.
	ActiveToday time.Duration
}

package app

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

type SummaryRequest struct {
	Subject string
	Now     *time.Time
	// StatusOverride replaces the status derived from the log.
	StatusOverride *domain.Status
	// From and To, when set, restrict the report to [From, To).
	From *time.Time
	To   *time.Time
}

func NewSummaryRequest(subject string) SummaryRequest {
	return SummaryRequest{Subject: subject}
}

type SummaryResponse struct {
	Subject     string
	GeneratedAt time.Time
	Status      domain.Status
	Report      domain.SummaryReport
}

type SummaryErrorCode string

const (
	SummaryErrInvalidRange SummaryErrorCode = "SUMMARY_INVALID_RANGE"
)

type SummaryError struct {
	Code    SummaryErrorCode
	Message string
}

func (e *SummaryError) Error() string {
	return string(e.Code) + ": " + e.Message
}

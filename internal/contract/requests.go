// Package contract is the boundary surface of punchclock: request and
// response aliases for the app use cases, plus the JSON wire shapes in
// wire.go.
package contract

import "github.com/alexanderramin/punchclock/internal/app"

type (
	RecordEventRequest = app.RecordEventRequest
	StatusRequest      = app.StatusRequest
	StatusResponse     = app.StatusResponse
	SummaryRequest     = app.SummaryRequest
	SummaryResponse    = app.SummaryResponse
	SummaryError       = app.SummaryError
	SummaryErrorCode   = app.SummaryErrorCode
)

const SummaryErrInvalidRange = app.SummaryErrInvalidRange

func NewStatusRequest(subject string) StatusRequest {
	return app.NewStatusRequest(subject)
}

func NewSummaryRequest(subject string) SummaryRequest {
	return app.NewSummaryRequest(subject)
}

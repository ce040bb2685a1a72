package domain

import "errors"

var (
	// ErrUnknownEventKind is returned when a log contains a kind outside
	// the four recognised values. It aborts the whole computation.
	ErrUnknownEventKind = errors.New("unknown event kind")

	// ErrInvalidBoundaryRule is returned for out-of-range bucket settings.
	ErrInvalidBoundaryRule = errors.New("invalid boundary rule")
)

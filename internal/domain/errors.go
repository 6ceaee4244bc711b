package domain

import "errors"

// Error taxonomy shared across the service and delivery layers. Callers wrap
// these with fmt.Errorf("...: %w", err) and classify with errors.Is.
var (
	// ErrInvalid marks requests rejected before any computation (bad day
	// count, unknown transport type).
	ErrInvalid = errors.New("invalid request")

	// ErrNotFound marks lookups of unknown location or area names.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks a failed statistics fetch. Area and bulk
	// pipelines catch it and skip the member; single-location requests
	// surface it.
	ErrUnavailable = errors.New("statistics service unavailable")

	// ErrNoData marks an aggregation where every member failed.
	ErrNoData = errors.New("no data available")
)

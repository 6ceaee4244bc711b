package domain

import (
	"context"
	"time"
)

// StatisticsProvider is the one collaborator call the prediction pipeline
// makes per location. The in-process implementation composes the series
// generator with the summarizer; the bridge implementation calls the sibling
// data-generator service. The orchestrator is agnostic to which is wired.
//
// Failures carry a kind through the error taxonomy: ErrUnavailable,
// ErrNotFound or ErrInvalid.
type StatisticsProvider interface {
	FetchStatistics(ctx context.Context, location string, transportType TransportType, days int) (SeriesStatistics, error)
}

// CongestionRepository persists congestion snapshots for history queries.
// Generated series are deliberately not persisted.
// This follows the Dependency Inversion Principle - domain defines the interface
type CongestionRepository interface {
	// SaveLocationCongestion persists a single-location estimate.
	SaveLocationCongestion(ctx context.Context, data LocationCongestion) error

	// SaveAreaCongestion persists an area estimate.
	SaveAreaCongestion(ctx context.Context, data AreaCongestion) error

	// GetAreaHistory retrieves persisted area estimates in a time range.
	GetAreaHistory(ctx context.Context, area string, from, to time.Time) ([]AreaCongestion, error)

	// Health checks database connectivity.
	Health(ctx context.Context) error
}

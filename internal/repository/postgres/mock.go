package postgres

import (
	"context"
	"time"

	"github.com/transitpulse/backend/internal/domain"
)

// MockRepository implements domain.CongestionRepository for testing/demo mode
type MockRepository struct{}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// SaveLocationCongestion is a no-op in mock mode
func (r *MockRepository) SaveLocationCongestion(ctx context.Context, data domain.LocationCongestion) error {
	return nil
}

// SaveAreaCongestion is a no-op in mock mode
func (r *MockRepository) SaveAreaCongestion(ctx context.Context, data domain.AreaCongestion) error {
	return nil
}

// GetAreaHistory returns mock historical data
func (r *MockRepository) GetAreaHistory(ctx context.Context, area string, from, to time.Time) ([]domain.AreaCongestion, error) {
	return []domain.AreaCongestion{
		{
			Area:         area,
			OverallLevel: domain.CongestionMedium,
			Score:        2.0,
			Hour:         9,
			Timestamp:    time.Now().Add(-24 * time.Hour),
		},
	}, nil
}

// Health always succeeds in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}

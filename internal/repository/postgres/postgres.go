package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transitpulse/backend/internal/domain"
)

// PostgresRepository implements domain.CongestionRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// SaveLocationCongestion persists a location estimate to PostgreSQL
func (r *PostgresRepository) SaveLocationCongestion(ctx context.Context, data domain.LocationCongestion) error {
	query := `
		INSERT INTO location_congestion (
			location, transport_type, current_footfall, base_daily_footfall,
			congestion_level, current_hour, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		data.Location, string(data.TransportType), data.CurrentFootfall, data.BaseDailyFootfall,
		data.Level.String(), data.Hour, data.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save location congestion: %w", err)
	}

	return nil
}

// SaveAreaCongestion persists an area estimate to PostgreSQL
func (r *PostgresRepository) SaveAreaCongestion(ctx context.Context, data domain.AreaCongestion) error {
	query := `
		INSERT INTO area_congestion (
			area, overall_congestion, congestion_score, component_count,
			current_hour, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		data.Area, data.OverallLevel.String(), data.Score, len(data.Components),
		data.Hour, data.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save area congestion: %w", err)
	}

	return nil
}

// GetAreaHistory retrieves persisted area estimates from PostgreSQL.
// Components are not stored; history rows carry the aggregate only.
func (r *PostgresRepository) GetAreaHistory(ctx context.Context, area string, from, to time.Time) ([]domain.AreaCongestion, error) {
	query := `
		SELECT area, overall_congestion, congestion_score, current_hour, timestamp
		FROM area_congestion
		WHERE area = $1 AND timestamp BETWEEN $2 AND $3
		ORDER BY timestamp DESC
		LIMIT 100
	`

	rows, err := r.pool.Query(ctx, query, area, from, to)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query area congestion: %w", err)
	}
	defer rows.Close()

	var results []domain.AreaCongestion
	for rows.Next() {
		var a domain.AreaCongestion
		var level string
		err := rows.Scan(&a.Area, &level, &a.Score, &a.Hour, &a.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan area congestion row: %w", err)
		}
		a.OverallLevel = parseLevel(level)
		results = append(results, a)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

func parseLevel(s string) domain.CongestionLevel {
	switch s {
	case "High":
		return domain.CongestionHigh
	case "Medium":
		return domain.CongestionMedium
	default:
		return domain.CongestionLow
	}
}

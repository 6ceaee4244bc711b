package service

import (
	"math"

	"github.com/transitpulse/backend/internal/domain"
)

// Estimator converts a base daily footfall into an instantaneous congestion
// estimate for a given hour of day.
type Estimator struct {
	catalog *domain.Catalog
}

// NewEstimator creates an estimator over the catalog's demand tables.
func NewEstimator(catalog *domain.Catalog) *Estimator {
	return &Estimator{catalog: catalog}
}

// Estimate scales the base daily footfall by the hour demand curve and
// classifies the result. The level decision gates on the hour multiplier
// together with the transport-weighted footfall: above-rush demand
// (multiplier > 1.2) with weighted footfall over 5000 is High, elevated
// demand (multiplier > 0.9) over 3000 is Medium, anything else is Low.
func (e *Estimator) Estimate(baseDailyFootfall float64, transportType domain.TransportType, hour int) (int, domain.CongestionLevel) {
	hourMultiplier := e.catalog.HourMultiplier(hour)
	current := int(math.Round(baseDailyFootfall * hourMultiplier))
	adjusted := float64(current) * e.catalog.TransportFactor(transportType)

	switch {
	case hourMultiplier > 1.2 && adjusted > 5000:
		return current, domain.CongestionHigh
	case hourMultiplier > 0.9 && adjusted > 3000:
		return current, domain.CongestionMedium
	default:
		return current, domain.CongestionLow
	}
}

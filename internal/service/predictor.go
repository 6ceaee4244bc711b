package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/transitpulse/backend/internal/domain"
	"github.com/transitpulse/backend/pkg/utils"
)

// DefaultWindowDays is the statistics window used when a request does not
// specify one.
const DefaultWindowDays = 90

// Predictor orchestrates the congestion pipelines: it resolves catalog
// entries, fetches statistics through the provider and runs the estimator.
type Predictor struct {
	catalog   *domain.Catalog
	stats     domain.StatisticsProvider
	estimator *Estimator
	days      int
	now       func() time.Time
}

// NewPredictor creates a predictor using the default statistics window.
func NewPredictor(catalog *domain.Catalog, stats domain.StatisticsProvider, estimator *Estimator) *Predictor {
	return &Predictor{
		catalog:   catalog,
		stats:     stats,
		estimator: estimator,
		days:      DefaultWindowDays,
		now:       time.Now,
	}
}

// PredictLocation estimates current congestion for a single location. The
// mean of the statistics window serves as the base daily footfall.
func (p *Predictor) PredictLocation(ctx context.Context, name string) (domain.LocationCongestion, error) {
	transportType, ok := p.catalog.TransportTypeOf(name)
	if !ok {
		return domain.LocationCongestion{}, fmt.Errorf("%w: location %q", domain.ErrNotFound, name)
	}

	stats, err := p.stats.FetchStatistics(ctx, name, transportType, p.days)
	if err != nil {
		return domain.LocationCongestion{}, fmt.Errorf("location %s: %w", name, err)
	}

	now := p.now()
	current, level := p.estimator.Estimate(stats.Mean, transportType, now.Hour())

	return domain.LocationCongestion{
		Location:          name,
		TransportType:     transportType,
		CurrentFootfall:   current,
		BaseDailyFootfall: int(stats.Mean),
		Level:             level,
		Hour:              now.Hour(),
		Statistics:        &stats,
		Timestamp:         now,
	}, nil
}

// PredictArea estimates congestion for every member of an area and combines
// the surviving results. Members whose statistics fetch fails are skipped;
// the area fails only when no member succeeded.
func (p *Predictor) PredictArea(ctx context.Context, name string) (domain.AreaCongestion, error) {
	area, ok := p.catalog.AreaByName(name)
	if !ok {
		return domain.AreaCongestion{}, fmt.Errorf("%w: area %q", domain.ErrNotFound, name)
	}

	now := p.now()
	hour := now.Hour()

	var components []domain.AreaComponent
	for _, member := range area.MemberList() {
		stats, err := p.stats.FetchStatistics(ctx, member.Name, member.Type, p.days)
		if err != nil {
			log.Printf("Skipping %s in area %s: %v", member.Name, name, err)
			continue
		}
		footfall, level := p.estimator.Estimate(stats.Mean, member.Type, hour)
		components = append(components, domain.AreaComponent{
			Location:      member.Name,
			TransportType: member.Type,
			Footfall:      footfall,
			Level:         level,
		})
	}

	score, overall, err := aggregateComponents(components)
	if err != nil {
		return domain.AreaCongestion{}, fmt.Errorf("area %s: %w", name, err)
	}

	return domain.AreaCongestion{
		Area:         name,
		OverallLevel: overall,
		Score:        utils.RoundTo(score, 2),
		Hour:         hour,
		Timestamp:    now,
		Components:   components,
	}, nil
}

// PredictAllAreas runs the area pipeline for every catalog area. Areas that
// fail are skipped. Sub-pipelines run concurrently but results keep catalog
// order.
func (p *Predictor) PredictAllAreas(ctx context.Context) []domain.AreaCongestion {
	areas := p.catalog.Areas()
	results := make([]*domain.AreaCongestion, len(areas))

	var wg sync.WaitGroup
	for i, area := range areas {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			res, err := p.PredictArea(ctx, name)
			if err != nil {
				log.Printf("Skipping area %s: %v", name, err)
				return
			}
			results[i] = &res
		}(i, area.Name)
	}
	wg.Wait()

	out := make([]domain.AreaCongestion, 0, len(areas))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// PredictByTransportType estimates congestion for every location of a
// transport type, skipping locations whose statistics fetch fails.
func (p *Predictor) PredictByTransportType(ctx context.Context, transportType domain.TransportType) ([]domain.LocationCongestion, error) {
	locations := p.catalog.LocationsOf(transportType)
	if len(locations) == 0 {
		return nil, fmt.Errorf("%w: transport type %q", domain.ErrNotFound, transportType)
	}

	now := p.now()
	hour := now.Hour()

	results := make([]domain.LocationCongestion, 0, len(locations))
	for _, loc := range locations {
		stats, err := p.stats.FetchStatistics(ctx, loc.Name, transportType, p.days)
		if err != nil {
			log.Printf("Skipping %s: %v", loc.Name, err)
			continue
		}
		current, level := p.estimator.Estimate(stats.Mean, transportType, hour)
		results = append(results, domain.LocationCongestion{
			Location:          loc.Name,
			TransportType:     transportType,
			CurrentFootfall:   current,
			BaseDailyFootfall: int(stats.Mean),
			Level:             level,
			Hour:              hour,
			Timestamp:         now,
		})
	}
	return results, nil
}

// aggregateComponents averages the component level codes (Low=1, Medium=2,
// High=3). The level thresholds apply to the unrounded mean: >=2.5 High,
// >=1.5 Medium, else Low.
func aggregateComponents(components []domain.AreaComponent) (float64, domain.CongestionLevel, error) {
	if len(components) == 0 {
		return 0, 0, domain.ErrNoData
	}

	sum := 0
	for _, c := range components {
		sum += int(c.Level)
	}
	score := float64(sum) / float64(len(components))

	switch {
	case score >= 2.5:
		return score, domain.CongestionHigh, nil
	case score >= 1.5:
		return score, domain.CongestionMedium, nil
	default:
		return score, domain.CongestionLow, nil
	}
}

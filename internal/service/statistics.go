package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/transitpulse/backend/internal/domain"
)

// Summarize reduces a footfall series to its summary statistics. Std is the
// sample standard deviation (ddof=1), defined as 0 for a single entry.
// Median is the mean of the two middle values for even lengths.
func Summarize(series domain.FootfallSeries) (domain.SeriesStatistics, error) {
	n := len(series)
	if n == 0 {
		return domain.SeriesStatistics{}, fmt.Errorf("%w: cannot summarize an empty series", domain.ErrInvalid)
	}

	sorted := make([]int, n)
	sum := 0
	for i, entry := range series {
		sorted[i] = entry.Value
		sum += entry.Value
	}
	sort.Ints(sorted)

	mean := float64(sum) / float64(n)

	var median float64
	if n%2 == 1 {
		median = float64(sorted[n/2])
	} else {
		median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}

	var std float64
	if n > 1 {
		var squares float64
		for _, v := range sorted {
			d := float64(v) - mean
			squares += d * d
		}
		std = math.Sqrt(squares / float64(n-1))
	}

	return domain.SeriesStatistics{
		Mean:   mean,
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Std:    std,
	}, nil
}

// LocalStatistics implements domain.StatisticsProvider in-process by
// composing the series generator with Summarize.
type LocalStatistics struct {
	generator *Generator
}

// NewLocalStatistics creates the in-process statistics provider.
func NewLocalStatistics(generator *Generator) *LocalStatistics {
	return &LocalStatistics{generator: generator}
}

// FetchStatistics generates a fresh series for the location and summarizes it.
func (p *LocalStatistics) FetchStatistics(ctx context.Context, location string, transportType domain.TransportType, days int) (domain.SeriesStatistics, error) {
	series, err := p.generator.Generate(location, transportType, days)
	if err != nil {
		return domain.SeriesStatistics{}, err
	}
	return Summarize(series)
}

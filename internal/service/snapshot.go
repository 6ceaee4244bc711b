package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/transitpulse/backend/internal/domain"
)

// Snapshotter captures all-areas congestion into the repository so the
// history endpoints have data between live requests. Run is wired as a cron
// job body in cmd/server.
type Snapshotter struct {
	predictor *Predictor
	repo      domain.CongestionRepository

	wgBg sync.WaitGroup // tracks background saves for graceful shutdown
}

// NewSnapshotter creates a new snapshotter.
func NewSnapshotter(predictor *Predictor, repo domain.CongestionRepository) *Snapshotter {
	return &Snapshotter{predictor: predictor, repo: repo}
}

// Run captures one snapshot of every area and persists it.
func (s *Snapshotter) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	areas := s.predictor.PredictAllAreas(ctx)
	for _, area := range areas {
		if err := s.repo.SaveAreaCongestion(ctx, area); err != nil {
			log.Printf("Failed to save snapshot for area %s: %v", area.Area, err)
		}
	}
	log.Printf("Captured congestion snapshot for %d areas", len(areas))
}

// SaveLocationAsync persists a location estimate in the background, tracked
// for graceful shutdown.
func (s *Snapshotter) SaveLocationAsync(data domain.LocationCongestion) {
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.SaveLocationCongestion(ctx, data); err != nil {
			log.Printf("Failed to save congestion for %s: %v", data.Location, err)
		}
	}()
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *Snapshotter) WaitBackground() {
	s.wgBg.Wait()
}

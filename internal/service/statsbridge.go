package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/transitpulse/backend/internal/domain"
)

// StatsBridge implements domain.StatisticsProvider against a sibling
// data-generator service over HTTP.
type StatsBridge struct {
	serviceURL string
	httpClient *http.Client
}

// NewStatsBridge creates a new statistics bridge.
func NewStatsBridge(serviceURL string) *StatsBridge {
	return &StatsBridge{
		serviceURL: serviceURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generateDataRequest struct {
	LocationName  string `json:"location_name"`
	TransportType string `json:"transport_type"`
	Days          int    `json:"days"`
}

type generateDataResponse struct {
	Success    bool                    `json:"success"`
	Statistics domain.SeriesStatistics `json:"statistics"`
}

// FetchStatistics requests a generated statistics window from the remote
// service. Transport failures and non-2xx responses map onto the error
// taxonomy so the skip-on-failure policy upstream applies uniformly.
func (b *StatsBridge) FetchStatistics(ctx context.Context, location string, transportType domain.TransportType, days int) (domain.SeriesStatistics, error) {
	body, err := json.Marshal(generateDataRequest{
		LocationName:  location,
		TransportType: string(transportType),
		Days:          days,
	})
	if err != nil {
		return domain.SeriesStatistics{}, fmt.Errorf("stats bridge: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate/data", b.serviceURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.SeriesStatistics{}, fmt.Errorf("stats bridge: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return domain.SeriesStatistics{}, fmt.Errorf("stats bridge: %v: %w", err, domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.SeriesStatistics{}, fmt.Errorf("stats bridge: %s: %w", location, domain.ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return domain.SeriesStatistics{}, fmt.Errorf("stats bridge: rejected request for %s: %w", location, domain.ErrInvalid)
	case resp.StatusCode != http.StatusOK:
		return domain.SeriesStatistics{}, fmt.Errorf("stats bridge: status %d: %w", resp.StatusCode, domain.ErrUnavailable)
	}

	var out generateDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.SeriesStatistics{}, fmt.Errorf("stats bridge: failed to decode response: %w", domain.ErrUnavailable)
	}
	if !out.Success {
		return domain.SeriesStatistics{}, fmt.Errorf("stats bridge: generation failed for %s: %w", location, domain.ErrUnavailable)
	}

	return out.Statistics, nil
}

// Health checks data-generator connectivity.
func (b *StatsBridge) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", b.serviceURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("stats bridge: failed to create health request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stats bridge: health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stats bridge: health check returned status %d", resp.StatusCode)
	}

	return nil
}

package http

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/transitpulse/backend/internal/domain"
	"github.com/transitpulse/backend/internal/repository/postgres"
	"github.com/transitpulse/backend/internal/service"
)

func newTestApp() *fiber.App {
	catalog := domain.NewCatalog()
	generator := service.NewGeneratorWithRand(catalog, rand.New(rand.NewSource(11)))
	estimator := service.NewEstimator(catalog)
	predictor := service.NewPredictor(catalog, service.NewLocalStatistics(generator), estimator)
	repo := postgres.NewMockRepository()
	snapshotter := service.NewSnapshotter(predictor, repo)

	app := fiber.New()
	SetupRoutes(app, catalog, generator, predictor, snapshotter, repo)
	return app
}

func jsonRequest(method, target, body string) *nethttp.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/health", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != nethttp.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestListLocations(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/v1/locations", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		MetroStations  []domain.Location `json:"metro_stations"`
		TrafficSignals []domain.Location `json:"traffic_signals"`
		Areas          []string          `json:"areas"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.MetroStations) != 10 || len(out.TrafficSignals) != 10 {
		t.Errorf("station counts = %d/%d, want 10/10", len(out.MetroStations), len(out.TrafficSignals))
	}
	if len(out.Areas) != 7 {
		t.Errorf("areas = %d, want 7", len(out.Areas))
	}
}

func TestLocationPrediction(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/v1/location/Andheri", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out domain.LocationCongestion
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Location != "Andheri" || out.TransportType != domain.TransportMetro {
		t.Errorf("got %s (%s), want Andheri (metro)", out.Location, out.TransportType)
	}
	if out.Level.String() == "Unknown" {
		t.Errorf("level missing from response")
	}
	if out.Statistics == nil || out.Statistics.Mean <= 0 {
		t.Error("statistics missing from response")
	}
}

func TestLocationPredictionNotFound(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/v1/location/Nowhere", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != nethttp.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestAreaPrediction(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/v1/area/Bandra", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out domain.AreaCongestion
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Area != "Bandra" || len(out.Components) != 2 {
		t.Errorf("got %s with %d components, want Bandra with 2", out.Area, len(out.Components))
	}
	if out.Score < 1.0 || out.Score > 3.0 {
		t.Errorf("score %v outside [1, 3]", out.Score)
	}
}

func TestTransportTypeInvalid(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/v1/transport/tram", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != nethttp.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGenerateData(t *testing.T) {
	app := newTestApp()
	req := jsonRequest(nethttp.MethodPost, "/api/v1/data/generate",
		`{"location_name": "Andheri", "transport_type": "metro", "days": 10}`)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out domain.SeriesResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Success || out.Records != 10 || len(out.Data) != 10 {
		t.Errorf("got success=%v records=%d len=%d, want 10 records", out.Success, out.Records, len(out.Data))
	}
	if out.Statistics.Min > out.Statistics.Max {
		t.Errorf("implausible statistics: %+v", out.Statistics)
	}
}

func TestGenerateDataRejectsBadDays(t *testing.T) {
	app := newTestApp()
	req := jsonRequest(nethttp.MethodPost, "/api/v1/data/generate",
		`{"location_name": "Andheri", "transport_type": "metro", "days": 500}`)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != nethttp.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestExportZip(t *testing.T) {
	app := newTestApp()
	req := jsonRequest(nethttp.MethodPost, "/api/v1/data/export/zip",
		`{"days": 5, "include_railway": false, "include_bus": false, "include_signals": false}`)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 10 {
		t.Fatalf("archive holds %d files, want 10 metro files", len(zr.File))
	}
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "data_metro_") || !strings.HasSuffix(f.Name, ".csv") {
			t.Errorf("unexpected archive entry %s", f.Name)
		}
	}
}

func TestAreaHistory(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/v1/history/Andheri", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != nethttp.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/v1/history/Atlantis", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != nethttp.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

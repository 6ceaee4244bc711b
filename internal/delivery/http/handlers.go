package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/transitpulse/backend/internal/domain"
	"github.com/transitpulse/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	catalog     *domain.Catalog
	generator   *service.Generator
	predictor   *service.Predictor
	snapshotter *service.Snapshotter
	repo        service.CongestionRepository
}

// NewHandler creates a new handler
func NewHandler(
	catalog *domain.Catalog,
	generator *service.Generator,
	predictor *service.Predictor,
	snapshotter *service.Snapshotter,
	repo service.CongestionRepository,
) *Handler {
	return &Handler{
		catalog:     catalog,
		generator:   generator,
		predictor:   predictor,
		snapshotter: snapshotter,
		repo:        repo,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "transitpulse-backend",
		"version": "1.0.0",
	})
}

// GetLocations returns the catalog snapshot grouped by transport type
func (h *Handler) GetLocations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"metro_stations":   h.catalog.LocationsOf(domain.TransportMetro),
		"railway_stations": h.catalog.LocationsOf(domain.TransportRailway),
		"bus_stations":     h.catalog.LocationsOf(domain.TransportBus),
		"traffic_signals":  h.catalog.LocationsOf(domain.TransportSignal),
		"areas":            h.catalog.AreaNames(),
	})
}

// GetLocation returns the current congestion estimate for one location
func (h *Handler) GetLocation(c *fiber.Ctx) error {
	name := c.Params("name")

	result, err := h.predictor.PredictLocation(c.Context(), name)
	if err != nil {
		return errorToHTTP(err)
	}

	// Persist the estimate asynchronously; the response does not wait.
	h.snapshotter.SaveLocationAsync(result)

	return c.JSON(result)
}

// GetArea returns the combined congestion estimate for one area
func (h *Handler) GetArea(c *fiber.Ctx) error {
	name := c.Params("name")

	result, err := h.predictor.PredictArea(c.Context(), name)
	if err != nil {
		return errorToHTTP(err)
	}

	return c.JSON(result)
}

// GetAllAreas returns congestion estimates for every catalog area
func (h *Handler) GetAllAreas(c *fiber.Ctx) error {
	areas := h.predictor.PredictAllAreas(c.Context())

	return c.JSON(fiber.Map{
		"areas":       areas,
		"total_areas": len(areas),
		"timestamp":   time.Now(),
	})
}

// GetTransportType returns congestion estimates for every location of a type
func (h *Handler) GetTransportType(c *fiber.Ctx) error {
	transportType, err := domain.ParseTransportType(c.Params("type"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Invalid transport type")
	}

	results, err := h.predictor.PredictByTransportType(c.Context(), transportType)
	if err != nil {
		return errorToHTTP(err)
	}

	return c.JSON(fiber.Map{
		"transport_type":  transportType,
		"locations":       results,
		"total_locations": len(results),
		"timestamp":       time.Now(),
		"current_hour":    time.Now().Hour(),
	})
}

// GenerateRequest is the body for single-location generation and CSV export
type GenerateRequest struct {
	LocationName  string `json:"location_name"`
	TransportType string `json:"transport_type"`
	Days          int    `json:"days"`
}

// GenerateData synthesizes a footfall series and returns it with statistics
func (h *Handler) GenerateData(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Days == 0 {
		req.Days = service.DefaultWindowDays
	}

	series, err := h.generator.Generate(req.LocationName, domain.TransportType(req.TransportType), req.Days)
	if err != nil {
		return errorToHTTP(err)
	}

	stats, err := service.Summarize(series)
	if err != nil {
		return errorToHTTP(err)
	}

	return c.JSON(domain.SeriesResult{
		Success:       true,
		Location:      req.LocationName,
		TransportType: domain.TransportType(req.TransportType),
		Days:          req.Days,
		Records:       len(series),
		Statistics:    stats,
		Data:          series,
	})
}

// GetAreaHistory returns persisted area snapshots within a time range
func (h *Handler) GetAreaHistory(c *fiber.Ctx) error {
	area := c.Params("area")
	if _, ok := h.catalog.AreaByName(area); !ok {
		return fiber.NewError(fiber.StatusNotFound, "Area not found")
	}

	hours := c.QueryInt("hours", 24)
	if hours < 1 || hours > 720 { // max 30 days
		hours = 24
	}

	to := time.Now()
	from := to.Add(-time.Duration(hours) * time.Hour)

	data, err := h.repo.GetAreaHistory(c.Context(), area, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch area history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

// errorToHTTP maps the domain error taxonomy onto HTTP statuses
func errorToHTTP(err error) *fiber.Error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoData):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalid):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

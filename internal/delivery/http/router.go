package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transitpulse/backend/internal/domain"
	"github.com/transitpulse/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(
	app *fiber.App,
	catalog *domain.Catalog,
	generator *service.Generator,
	predictor *service.Predictor,
	snapshotter *service.Snapshotter,
	repo service.CongestionRepository,
) {
	handler := NewHandler(catalog, generator, predictor, snapshotter, repo)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Catalog and prediction endpoints
		api.Get("/locations", handler.GetLocations)
		api.Get("/location/:name", handler.GetLocation)
		api.Get("/area/:name", handler.GetArea)
		api.Get("/areas/all", handler.GetAllAreas)
		api.Get("/transport/:type", handler.GetTransportType)

		// Data generation and export
		api.Post("/data/generate", handler.GenerateData)
		api.Post("/data/generate/all", handler.BulkGenerate)
		api.Post("/data/export", handler.ExportCSV)
		api.Post("/data/export/zip", handler.ExportZIP)

		// Persisted snapshot history
		api.Get("/history/:area", handler.GetAreaHistory)
	}
}

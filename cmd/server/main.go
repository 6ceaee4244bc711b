package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/transitpulse/backend/internal/delivery/http"
	"github.com/transitpulse/backend/internal/domain"
	"github.com/transitpulse/backend/internal/repository/postgres"
	"github.com/transitpulse/backend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, running without snapshot persistence")
	} else if p, err := pgxpool.New(ctx, cfg.DatabaseURL); err != nil {
		log.Printf("Warning: Could not connect to database: %v", err)
		log.Println("Running without snapshot persistence")
	} else {
		pool = p
		defer pool.Close()
		log.Println("Connected to PostgreSQL")
	}

	// Dependency Injection: Repositories
	var repo service.CongestionRepository
	if pool != nil {
		repo = postgres.NewPostgresRepository(pool)
	} else {
		repo = postgres.NewMockRepository()
	}

	// Dependency Injection: Services
	catalog := domain.NewCatalog()
	generator := service.NewGenerator(catalog)
	estimator := service.NewEstimator(catalog)

	var stats service.StatisticsProvider
	if cfg.DataGenServiceURL != "" {
		log.Printf("Using remote data generator at %s", cfg.DataGenServiceURL)
		stats = service.NewStatsBridge(cfg.DataGenServiceURL)
	} else {
		log.Println("Using in-process data generation")
		stats = service.NewLocalStatistics(generator)
	}

	predictor := service.NewPredictor(catalog, stats, estimator)
	snapshotter := service.NewSnapshotter(predictor, repo)

	// Periodic all-areas snapshots for the history endpoints
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.SnapshotSchedule, snapshotter.Run); err != nil {
		log.Fatalf("Failed to set up snapshot job: %v", err)
	}
	scheduler.Start()

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "TransitPulse API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	http.SetupRoutes(app, catalog, generator, predictor, snapshotter, repo)

	// Graceful shutdown
	go func() {
		port := cfg.Port
		if port == "" {
			port = "8080"
		}
		log.Printf("Server starting on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	scheduler.Stop()
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	snapshotter.WaitBackground()
	log.Println("Server exited gracefully")
}

type Config struct {
	DatabaseURL       string
	DataGenServiceURL string
	SnapshotSchedule  string
	Port              string
	Env               string
}

func loadConfig() *Config {
	return &Config{
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DataGenServiceURL: getEnv("DATA_GEN_SERVICE_URL", ""),
		SnapshotSchedule:  getEnv("SNAPSHOT_SCHEDULE", "@every 15m"),
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

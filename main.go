package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"medingen-server/internal/config"
	"medingen-server/internal/middleware"
	"medingen-server/internal/models"
	"medingen-server/internal/routes"
	"medingen-server/internal/seed"
)

func main() {
	// Load environment variables; a missing .env just means the process
	// environment is used as-is.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	// Initialize database connection and migrate the schema
	db, err := models.InitDB(cfg.Database)
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}

	// Seed demo data on first run
	if err := seed.Run(db); err != nil {
		slog.Error("Error seeding database", "error", err)
		os.Exit(1)
	}

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Per-client rate limiting
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	// Set up routes - passing DB and config to let routes.go create the handlers
	routes.SetupRoutes(router, db, cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("Server running", "port", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

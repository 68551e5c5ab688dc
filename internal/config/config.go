package config

import (
	"fmt"
	"os"
	"strconv"

	"medingen-server/internal/models"
)

// Config holds all configuration for the application
type Config struct {
	Port                 string
	Origin               string
	Environment          string
	JWTSecret            string
	JWTExpirationMinutes int
	RateLimitPerSecond   float64
	RateLimitBurst       int64
	Database             models.DatabaseConfig
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	environment := getEnv("APP_ENV", "development")

	// Access tokens live one hour in development and one day in production
	// unless overridden.
	defaultExpiry := "60"
	if environment == "production" {
		defaultExpiry = "1440"
	}
	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", defaultExpiry))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}

	rateLimitPerSecond, err := strconv.ParseFloat(getEnv("RATE_LIMIT_PER_SECOND", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_SECOND: %w", err)
	}
	rateLimitBurst, err := strconv.ParseInt(getEnv("RATE_LIMIT_BURST", "50"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	return &Config{
		Port:                 getEnv("PORT", "5000"),
		Origin:               getEnv("ORIGIN", "http://localhost:3000"),
		Environment:          environment,
		JWTSecret:            getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTExpirationMinutes: jwtExpMinutes,
		RateLimitPerSecond:   rateLimitPerSecond,
		RateLimitBurst:       rateLimitBurst,
		Database:             loadDatabaseConfig(),
	}, nil
}

// loadDatabaseConfig selects the backing store. A local sqlite file is the
// default; set DB_DRIVER=mysql to use a networked database instead.
func loadDatabaseConfig() models.DatabaseConfig {
	driver := getEnv("DB_DRIVER", "sqlite")
	dbConfig := models.DatabaseConfig{
		Driver: driver,
		Path:   getEnv("DB_PATH", "medingen.db"),
	}

	if driver == "mysql" {
		username := getEnv("DB_USERNAME", "root")
		password := getEnv("DB_PASSWORD", "")
		host := getEnv("DB_HOST", "localhost")
		port := getEnv("DB_PORT", "3306")
		name := getEnv("DB_NAME", "medingen")
		dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			username, password, host, port, name)
	}

	return dbConfig
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

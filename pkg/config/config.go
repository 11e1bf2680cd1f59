// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	// Remote store
	Supabase *SupabaseConfig
	Postgres *PostgresConfig // Optional direct Postgres connection

	// Ingestion settings
	ChunkSize      int           // Records per upload POST
	PageSize       int           // Records per fetch page
	AllowedRegions []string      // Region codes accepted from uploads
	RequestTimeout time.Duration // Per-request timeout for store calls
	RateLimit      float64       // Store requests per second

	// HTTP server
	HTTPPort string

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from the environment, reading a .env file
// first when one is present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine: plain environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		// Default values
		ChunkSize:      getEnvAsInt("CHUNK_SIZE", 500),
		PageSize:       getEnvAsInt("PAGE_SIZE", 1000),
		AllowedRegions: getEnvAsStringSlice("ALLOWED_REGIONS", []string{"24. Тернопіль"}),
		RequestTimeout: time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		RateLimit:      getEnvAsFloat("STORE_RATE_LIMIT", 10),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	supaConfig, err := LoadSupabaseConfig()
	if err != nil {
		return nil, errors.New("failed to load Supabase configuration: " + err.Error())
	}
	cfg.Supabase = supaConfig

	// The direct Postgres connection is optional: it backs the cleaning
	// audit table and upload verification, not the main data path.
	if os.Getenv("POSTGRES_HOST") != "" {
		pgConfig, err := LoadPostgresConfig()
		if err != nil {
			return nil, errors.New("failed to load PostgreSQL configuration: " + err.Error())
		}
		cfg.Postgres = pgConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.Supabase == nil {
		return errors.New("supabase configuration is required")
	}

	if c.ChunkSize <= 0 {
		return errors.New("chunk size must be positive")
	}

	if c.PageSize <= 0 {
		return errors.New("page size must be positive")
	}

	if c.RateLimit <= 0 {
		return errors.New("rate limit must be positive")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result []string
	for _, v := range strings.Split(value, ";") {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}

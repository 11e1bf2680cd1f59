// pkg/config/store.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// SupabaseConfig holds the REST credentials and table names for the hosted
// store.
type SupabaseConfig struct {
	URL        string // Project base URL, e.g. https://xyz.supabase.co
	APIKey     string
	SalesTable string // Row-level monthly sales table
	RepTable   string // Representative/manager sales table

	// Natural key for idempotent upserts. Empty disables upserts and keeps
	// plain append semantics.
	OnConflict []string
}

// PostgresConfig holds parameters for the optional direct database
// connection.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// LoadSupabaseConfig loads the Supabase configuration from environment
// variables.
func LoadSupabaseConfig() (*SupabaseConfig, error) {
	url := os.Getenv("SUPABASE_URL")
	if url == "" {
		return nil, errors.New("SUPABASE_URL environment variable is required")
	}

	key := os.Getenv("SUPABASE_KEY")
	if key == "" {
		return nil, errors.New("SUPABASE_KEY environment variable is required")
	}

	cfg := &SupabaseConfig{
		URL:        strings.TrimRight(url, "/"),
		APIKey:     key,
		SalesTable: getEnv("SUPABASE_SALES_TABLE", "sales_data_month"),
		RepTable:   getEnv("SUPABASE_REP_TABLE", "sales_data_rep"),
	}

	if onConflict := os.Getenv("SUPABASE_ON_CONFLICT"); onConflict != "" {
		for _, col := range strings.Split(onConflict, ",") {
			col = strings.TrimSpace(col)
			if col != "" {
				cfg.OnConflict = append(cfg.OnConflict, col)
			}
		}
	}

	return cfg, nil
}

// LoadPostgresConfig loads PostgreSQL configuration from environment variables
func LoadPostgresConfig() (*PostgresConfig, error) {
	user := os.Getenv("POSTGRES_USER")
	if user == "" {
		return nil, errors.New("POSTGRES_USER environment variable is required")
	}

	password := os.Getenv("POSTGRES_PASSWORD")
	if password == "" {
		return nil, errors.New("POSTGRES_PASSWORD environment variable is required")
	}

	database := os.Getenv("POSTGRES_DB")
	if database == "" {
		return nil, errors.New("POSTGRES_DB environment variable is required")
	}

	cfg := &PostgresConfig{
		Host:     getEnv("POSTGRES_HOST", "localhost"),
		Port:     getEnvAsInt("POSTGRES_PORT", 5432),
		User:     user,
		Password: password,
		Database: database,
		SSLMode:  getEnv("POSTGRES_SSLMODE", "require"),

		MaxOpenConns:    getEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: time.Duration(getEnvAsInt("POSTGRES_CONN_MAX_LIFETIME_SECONDS", 1800)) * time.Second,
		ConnMaxIdleTime: time.Duration(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_TIME_SECONDS", 600)) * time.Second,
	}

	return cfg, nil
}

// ConnectionString returns a formatted PostgreSQL connection string
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Database,
		c.SSLMode,
	)
}

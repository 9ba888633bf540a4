// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
)

// Config represents the application configuration
type Config struct {
	// Filesystem layout
	DataDir      string // root of the raw CSV tree
	CleanedDir   string // root of the mirrored cleaned tree
	AuditLogFile string // shared removed-rows log

	// Processing settings
	ChunkSize int

	// Optional Postgres audit sink (nil when not configured)
	Postgres *PostgresConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		// Default values match the project-relative dataset layout
		DataDir:      getEnv("DATA_DIR", "data"),
		CleanedDir:   getEnv("CLEANED_DIR", "cleaned-dataset"),
		AuditLogFile: getEnv("AUDIT_LOG_FILE", "removed_100000_entries.txt"),
		ChunkSize:    getEnvAsInt("CHUNK_SIZE", 100000),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "console"),
	}

	// The Postgres sink is opt-in: only loaded when credentials are present
	if os.Getenv("POSTGRES_USER") != "" {
		pgConfig, err := LoadPostgresConfig()
		if err != nil {
			return nil, errors.New("failed to load PostgreSQL configuration: " + err.Error())
		}
		cfg.Postgres = pgConfig
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data directory is required")
	}

	if c.CleanedDir == "" {
		return errors.New("cleaned output directory is required")
	}

	if c.AuditLogFile == "" {
		return errors.New("audit log file path is required")
	}

	if c.ChunkSize <= 0 {
		return errors.New("chunk size must be positive")
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

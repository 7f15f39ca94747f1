// Package config loads scraper configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	IDX       IDXConfig
	Database  DatabaseConfig
	Sidecar   SidecarConfig
	Scheduler SchedulerConfig
}

// IDXConfig selects the exchange endpoints and the feed date window.
type IDXConfig struct {
	BaseURL         string
	RegistryPageURL string
	ProxyURL        string
	DateFrom        string // YYYYMMDD; defaults to yesterday
	DateTo          string // YYYYMMDD; defaults to today
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// SidecarConfig points at the append-only incomplete-records file.
type SidecarConfig struct {
	Path string
}

type SchedulerConfig struct {
	Enabled bool
	Spec    string // cron expression for the daily scrape
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	now := time.Now()

	cfg := &Config{
		IDX: IDXConfig{
			BaseURL:         getEnv("IDX_BASE_URL", "https://www.idx.co.id"),
			RegistryPageURL: getEnv("IDX_REGISTRY_PAGE_URL", ""),
			ProxyURL:        getEnv("IDX_PROXY_URL", ""),
			DateFrom:        getEnv("IDX_DATE_FROM", now.AddDate(0, 0, -1).Format("20060102")),
			DateTo:          getEnv("IDX_DATE_TO", now.Format("20060102")),
		},
		Database: DatabaseConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			Database: getEnv("POSTGRES_DB", "idx"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		Sidecar: SidecarConfig{
			Path: getEnv("SIDECAR_PATH", "data_incomplete/idx_suspension_missing_data.csv"),
		},
		Scheduler: SchedulerConfig{
			Enabled: getEnvAsBool("SCHEDULER_ENABLED", false),
			Spec:    getEnv("SCHEDULER_SPEC", "0 18 * * *"),
		},
	}

	if _, err := time.Parse("20060102", cfg.IDX.DateFrom); err != nil {
		return nil, fmt.Errorf("IDX_DATE_FROM must be YYYYMMDD: %w", err)
	}
	if _, err := time.Parse("20060102", cfg.IDX.DateTo); err != nil {
		return nil, fmt.Errorf("IDX_DATE_TO must be YYYYMMDD: %w", err)
	}

	return cfg, nil
}

// DSN returns the database connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Count strategies for the per-subject yearly aggregation. "multi" counts
// every (publication, subject) pair; "single" keeps one subject per
// publication.
const (
	CountMulti  = "multi"
	CountSingle = "single"
)

// Config holds the connection parameters and analysis tunables, read once
// from the environment at startup.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	YearMin           int
	YearMax           int
	DefaultTargetYear int
	DefaultModel      string
	CountStrategy     string
	ChartDir          string
}

// Load reads configuration from environment variables, applies defaults
// and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSSLMode:     os.Getenv("DB_SSLMODE"),
		DefaultModel:  os.Getenv("MODEL_DEFAULT"),
		CountStrategy: os.Getenv("COUNT_STRATEGY"),
		ChartDir:      os.Getenv("CHART_DIR"),
	}

	var err error
	if cfg.YearMin, err = intEnv("YEAR_MIN", 2016); err != nil {
		return nil, err
	}
	if cfg.YearMax, err = intEnv("YEAR_MAX", 2024); err != nil {
		return nil, err
	}
	if cfg.DefaultTargetYear, err = intEnv("TARGET_DEFAULT", 2026); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConnString formats the lib/pq connection string.
func (c *Config) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func applyDefaults(cfg *Config) {
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = "trend"
	}
	if cfg.CountStrategy == "" {
		cfg.CountStrategy = CountMulti
	}
	if cfg.ChartDir == "" {
		cfg.ChartDir = "."
	}
}

func validate(cfg *Config) error {
	if cfg.DBHost == "" {
		return fmt.Errorf("config: DB_HOST is required")
	}
	if cfg.DBName == "" {
		return fmt.Errorf("config: DB_NAME is required")
	}
	if cfg.YearMin > cfg.YearMax {
		return fmt.Errorf("config: YEAR_MIN %d is after YEAR_MAX %d", cfg.YearMin, cfg.YearMax)
	}
	if cfg.DefaultModel != "trend" && cfg.DefaultModel != "lm" {
		return fmt.Errorf("config: unknown MODEL_DEFAULT %q (want trend or lm)", cfg.DefaultModel)
	}
	if cfg.CountStrategy != CountMulti && cfg.CountStrategy != CountSingle {
		return fmt.Errorf("config: unknown COUNT_STRATEGY %q (want multi or single)", cfg.CountStrategy)
	}
	return nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}

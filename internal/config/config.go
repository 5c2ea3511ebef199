package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Scoring ScoringConfig
}

type ServerConfig struct {
	Port               string
	Host               string
	Environment        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
}

type CatalogConfig struct {
	// Path to the institution catalogue JSON file. When empty, the
	// embedded default catalogue is used.
	Path string
}

type ScoringConfig struct {
	// Mode selects the scoring backend: "local" runs the in-process
	// scorer, "remote" calls the external scoring service over HTTP.
	Mode    string
	BaseURL string
	// Timeout caps every scoring call; upstream failures beyond it are
	// treated as unavailable and recovered via the insight fallback.
	Timeout             time.Duration
	CircuitMaxFailures  int
	CircuitResetTimeout time.Duration
}

const (
	ScoringModeLocal  = "local"
	ScoringModeRemote = "remote"
)

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
		Scoring: ScoringConfig{
			Mode:                getEnv("SCORING_MODE", ScoringModeLocal),
			BaseURL:             getEnv("SCORING_BASE_URL", "http://localhost:9090"),
			Timeout:             getDurationEnv("SCORING_TIMEOUT", 10*time.Second),
			CircuitMaxFailures:  getIntEnv("SCORING_CIRCUIT_MAX_FAILURES", 5),
			CircuitResetTimeout: getDurationEnv("SCORING_CIRCUIT_RESET_TIMEOUT", 30*time.Second),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

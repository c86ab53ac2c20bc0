// Package config provides configuration management for the pearl necklace program.
package config

import (
	"os"
	"strconv"
)

// Config holds the complete application configuration.
type Config struct {
	Necklace NecklaceConfig
	Log      LogConfig
	Report   ReportConfig
}

// NecklaceConfig holds necklace generation configuration.
type NecklaceConfig struct {
	Size int
	// Seed makes generation reproducible when non-zero.
	Seed uint64
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level          string
	Pretty         bool
	MetricsSummary bool
}

// ReportConfig holds report output configuration.
type ReportConfig struct {
	Locale string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Necklace: NecklaceConfig{
			Size: getEnvInt("NECKLACE_SIZE", 35),
			Seed: getEnvUint64("NECKLACE_SEED", 0),
		},
		Log: LogConfig{
			Level:          getEnv("LOG_LEVEL", "info"),
			Pretty:         getEnvBool("LOG_PRETTY", false),
			MetricsSummary: getEnvBool("METRICS_SUMMARY", false),
		},
		Report: ReportConfig{
			Locale: getEnv("LOCALE", "en"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvUint64(key string, defaultValue uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseUint(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

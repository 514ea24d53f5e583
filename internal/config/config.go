// Package config centralises configuration parsing for the recap service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration values for the recap service.
type Config struct {
	HTTPAddress     string
	MaxArchiveBytes int64         // Upper bound on accepted upload size.
	ExtractTimeout  time.Duration // Budget for processing one archive.
	RecapYear       int           // Default recap year when a request omits one; 0 means all time.
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		MaxArchiveBytes: getInt64Env("MAX_ARCHIVE_BYTES", 2<<30),
		ExtractTimeout:  getDurationEnv("EXTRACT_TIMEOUT", 2*time.Minute),
		RecapYear:       getIntEnv("RECAP_YEAR", time.Now().Year()),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt64Env(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

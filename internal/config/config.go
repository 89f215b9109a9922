// Package config loads server configuration from the environment.
package config

import (
	"os"
	"strings"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// DBPath is the SQLite database file location.
	DBPath string
	// AllowedOrigins are the frontend origins permitted by CORS.
	AllowedOrigins []string
}

// Load reads configuration from environment variables, falling back to
// development defaults.
func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "./data/draft_board.db"),
		AllowedOrigins: strings.Split(
			getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"), ",",
		),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

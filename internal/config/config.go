package config

import (
	"os"
)

// Config holds the server configuration, read from the environment.
type Config struct {
	Port         string
	DBPath       string
	JWTSecret    string
	LogLevel     string
	SeedDemo     bool
	AuthRequired bool
}

// Load reads configuration from environment variables, with defaults that
// suit local development.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/fleet.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "fleet-secret-change-in-production"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		Port:         port,
		DBPath:       dbPath,
		JWTSecret:    jwtSecret,
		LogLevel:     logLevel,
		SeedDemo:     os.Getenv("SEED_DEMO") != "false",
		AuthRequired: os.Getenv("AUTH_REQUIRED") == "true",
	}
}

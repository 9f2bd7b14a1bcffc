// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/railops/shift-engine/catalogue"
)

// Config is the full server configuration.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Operator OperatorConfig
}

// AppConfig holds HTTP server settings.
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// DatabaseConfig holds the SQLite settings.
type DatabaseConfig struct {
	Path string
}

// OperatorConfig identifies whose shifts this instance tracks. Role and home
// location drive roster resolution and allowance defaulting; the previous
// year's worked hours feed the year-over-year comparison.
type OperatorConfig struct {
	Role              catalogue.Role
	HomeLocation      catalogue.Location
	PreviousYearHours float64
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	// Absence of a .env file is fine, the environment alone may be complete.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	prevHours, err := strconv.ParseFloat(getEnv("OPERATOR_PREVIOUS_YEAR_HOURS", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OPERATOR_PREVIOUS_YEAR_HOURS: %w", err)
	}

	role := catalogue.Role(getEnv("OPERATOR_ROLE", string(catalogue.RoleDriver)))
	if !role.Valid() {
		return nil, fmt.Errorf("invalid OPERATOR_ROLE %q", role)
	}

	home := catalogue.Location(getEnv("OPERATOR_HOME_LOCATION", string(catalogue.LocationBenidorm)))
	if !home.Valid() {
		return nil, fmt.Errorf("invalid OPERATOR_HOME_LOCATION %q", home)
	}

	return &Config{
		App: AppConfig{
			Port:     port,
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/shifts.db"),
		},
		Operator: OperatorConfig{
			Role:              role,
			HomeLocation:      home,
			PreviousYearHours: prevHours,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
)

// Config collects all process-wide settings. It is built once in main and
// handed to the components that need it; nothing reads the environment after
// startup.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
}

// Load reads settings from the environment. DATABASE_URL may be replaced by
// the discrete DB_* variables (same convention as the connector).
func Load() (*Config, error) {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

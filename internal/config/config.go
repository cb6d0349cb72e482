// Package config provides server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the tutor server's configuration. Model provider
// configuration lives in the llm package (CONTINHA_* variables).
type Config struct {
	Port           string
	AllowedOrigins []string
	CSVPath        string
	DBPath         string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		CSVPath:        getEnv("CSV_PATH", "./data/interacoes.csv"),
		DBPath:         getEnv("DB_PATH", "./data/continha.db"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.CSVPath == "" {
		return fmt.Errorf("CSV_PATH cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS cannot be empty")
	}
	return nil
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

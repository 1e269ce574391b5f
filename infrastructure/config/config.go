// Package config holds the configuration for the cmd/mapper entry
// point: the environment (which picks the logger setup), the log level,
// a fixture path and the candidate-network ceiling. The subcommand
// itself comes from the command line, not from Config. The AWS/Lambda/WebSocket/JWT fields of the teacher's own
// Config do not survive here (spec §1 excludes persistence and
// distributed operation entirely), but the load-from-env shape and the
// Validate step do.
package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds all configuration the mapper entry point needs.
type Config struct {
	Environment string `validate:"required,oneof=development production"`
	LogLevel    string `validate:"required,oneof=debug info warn error"`

	// FixturePath is read from FIXTURE_PATH but cmd/mapper does not
	// consult it: each subcommand always loads its own built-in graph
	// from internal/fixture.
	FixturePath string

	// MaxCandidateNetworks is the ceiling cmd/mapper passes to
	// software.GenerateAllImplementationNetworksCapped so a pathological algorithm/implementation fan-out cannot blow up
	// memory in the demo binary (spec §4.3.1 cardinality is a product of
	// per-algorithm implementation counts with no built-in ceiling).
	MaxCandidateNetworks int `validate:"required,min=1"`
}

// Load builds a Config from environment variables, falling back to
// sensible development defaults, then validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:          getEnv("ENVIRONMENT", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		FixturePath:          getEnv("FIXTURE_PATH", ""),
		MaxCandidateNetworks: getEnvInt("MAX_CANDIDATE_NETWORKS", 10000),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg's struct tags with validator/v10.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// IsDevelopment reports whether cfg targets the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether cfg targets the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

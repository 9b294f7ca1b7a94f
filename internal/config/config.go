// Package config loads process configuration from environment variables
// using the COLLECTIONS_ prefix and validates it before use.
package config

import (
	"fmt"

	"github.com/gabapcia/collections/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every environment variable read by Load,
// e.g. COLLECTIONS_LOG_LEVEL.
const envPrefix = "collections"

// Config holds the process-level settings shared by every CLI command.
type Config struct {
	// LogLevel is the minimum level emitted by the global logger.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error panic fatal"`
}

// Load reads the configuration from the environment, applies defaults and
// validates the result.
//
// Returns:
//   - The populated Config on success.
//   - An error when a variable cannot be parsed or a value fails validation.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading environment configuration: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

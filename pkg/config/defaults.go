package config

import "os"

// Default values for configuration.
const (
	DefaultColor = "auto"
)

// Environment variable names.
const (
	EnvConfig = "LOGGREP_CONFIG"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Color: DefaultColor,
	}
}

// PathFromEnvironment returns the config file path from the environment,
// or empty when unset.
func PathFromEnvironment() string {
	return os.Getenv(EnvConfig)
}

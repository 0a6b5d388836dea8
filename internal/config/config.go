// Package config loads casealert's operational settings: which notification
// backend to use and how to log. Alert content is never configurable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "CASEALERT_"

// ConfigPathEnv names the variable that overrides the config file path.
// Setting it to the empty string disables the config file.
const ConfigPathEnv = EnvPrefix + "CONFIG"

// Configuration represents the casealert settings
type Configuration struct {
	Backend   string `koanf:"backend" validate:"required,backend"`
	LogLevel  string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `koanf:"log_format" validate:"required,oneof=text json"`
}

// Load loads configuration from the default config path and the environment.
// Priority: Environment variables > Config file > Defaults
func Load() (*Configuration, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads configuration using configPath as the JSON config file.
// A missing file or an empty path means defaults and environment only.
func LoadFrom(configPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
			}
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultPath returns the config file path: $CASEALERT_CONFIG when set,
// otherwise ~/.casealert/config.json. Returns "" when neither applies.
func DefaultPath() string {
	if p, ok := os.LookupEnv(ConfigPathEnv); ok {
		return expandHomePath(p)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".casealert", "config.json")
}

// envTransform converts environment variable names to config keys
// Example: CASEALERT_LOG_LEVEL -> log_level
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Catalogue struct {
		// Path is the catalogue JSON file written by the scrape job.
		Path string `yaml:"path" env:"CATALOGUE_PATH"`
		// RefreshInterval reloads the file periodically when non-empty,
		// e.g. "12h". An empty value disables the ticker; the admin
		// refresh endpoint still works either way.
		RefreshInterval string `yaml:"refresh_interval" env:"CATALOGUE_REFRESH_INTERVAL"`
	} `yaml:"catalogue"`

	Planner struct {
		// MaxSchedules caps how many schedules a single solve may return.
		MaxSchedules int `yaml:"max_schedules" env:"PLANNER_MAX_SCHEDULES"`
		// CacheSize is the number of solve results kept in the LRU cache.
		CacheSize int `yaml:"cache_size" env:"PLANNER_CACHE_SIZE"`
	} `yaml:"planner"`

	Auth struct {
		Secret          string `yaml:"secret" env:"AUTH_SECRET"`
		AdminKeyHash    string `yaml:"admin_key_hash" env:"AUTH_ADMIN_KEY_HASH"`
		TokenExpiration string `yaml:"token_expiration" env:"AUTH_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"AUTH_ISSUER"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A .env file is optional; ignore the error when it is absent.
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Catalogue defaults
	config.Catalogue.Path = "all_sections.json"
	config.Catalogue.RefreshInterval = ""

	// Planner defaults
	config.Planner.MaxSchedules = 50
	config.Planner.CacheSize = 256

	// Auth defaults
	config.Auth.TokenExpiration = "1h"
	config.Auth.Issuer = "schedbuilder"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Catalogue.Path == "" {
		return fmt.Errorf("catalogue path is required")
	}

	if config.Planner.MaxSchedules <= 0 {
		return fmt.Errorf("planner max_schedules must be positive")
	}

	if config.Planner.CacheSize <= 0 {
		return fmt.Errorf("planner cache_size must be positive")
	}

	if config.Auth.Secret == "" {
		return fmt.Errorf("auth secret is required")
	}

	if _, err := time.ParseDuration(config.Auth.TokenExpiration); err != nil {
		return fmt.Errorf("invalid auth token expiration format: %w", err)
	}

	if config.Catalogue.RefreshInterval != "" {
		if _, err := time.ParseDuration(config.Catalogue.RefreshInterval); err != nil {
			return fmt.Errorf("invalid catalogue refresh interval format: %w", err)
		}
	}

	return nil
}

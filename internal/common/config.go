package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the ZenMoney client
type Config struct {
	Environment string        `toml:"environment"`
	API         APIConfig     `toml:"api"`
	Storage     StorageConfig `toml:"storage"`
	Logging     LoggingConfig `toml:"logging"`
}

// APIConfig holds backend API configuration
type APIConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"` // requests per second, 0 disables limiting
}

// StorageConfig holds local storage configuration
type StorageConfig struct {
	Path string `toml:"path"` // BadgerHold directory for the credential store
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		API: APIConfig{
			BaseURL:   "https://finsight-backend-q5lh.onrender.com",
			RateLimit: 0,
		},
		Storage: StorageConfig{
			Path: "data/zenmoney",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	// .env is a convenience for local development; absent is fine
	_ = godotenv.Load()

	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("ZENMONEY_ENV"); env != "" {
		config.Environment = env
	}

	if url := os.Getenv("ZENMONEY_API_URL"); url != "" {
		config.API.BaseURL = url
	}

	if limit := os.Getenv("ZENMONEY_RATE_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			config.API.RateLimit = n
		}
	}

	if path := os.Getenv("ZENMONEY_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if level := os.Getenv("ZENMONEY_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

package config

import (
	"os"
	"strconv"

	"bstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data DataConfig
}

// DataConfig holds synthetic data generation settings for the demo
type DataConfig struct {
	Seed       int64 // RNG seed; fixed by default so runs are reproducible
	SampleSize int   // number of histogram samples
	TableRows  int   // number of table rows
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataConfig{
			Seed:       int64(getEnvIntOrDefault("BSTAT_SEED", 1)),
			SampleSize: getEnvIntOrDefault("BSTAT_SAMPLE_SIZE", 1000),
			TableRows:  getEnvIntOrDefault("BSTAT_TABLE_ROWS", 10),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.SampleSize <= 0 {
		return errors.ConfigInvalid("sample size must be positive")
	}
	if config.Data.TableRows <= 0 {
		return errors.ConfigInvalid("table row count must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Sheet SheetConfig
	Cache CacheConfig
	Log   LogConfig
	Mocks MocksConfig
}

type SheetConfig struct {
	ID              string
	Tab             string
	CredentialsFile string
	CredentialsJSON string
}

type CacheConfig struct {
	TTL time.Duration
}

type LogConfig struct {
	File string
}

type MocksConfig struct {
	Enable bool
}

// Load reads configuration from the environment. Defaults: tab "data",
// cache TTL 30 seconds.
func Load() (*Config, error) {
	ttlSeconds, err := intEnvOrDefault("CACHE_TTL_SECONDS", 30)
	if err != nil {
		return nil, err
	}

	return &Config{
		Sheet: SheetConfig{
			ID:              os.Getenv("SHEET_ID"),
			Tab:             getEnvOrDefault("SHEET_TAB", "data"),
			CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
			CredentialsJSON: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"),
		},
		Cache: CacheConfig{
			TTL: time.Duration(ttlSeconds) * time.Second,
		},
		Log: LogConfig{
			File: os.Getenv("LOG_FILE"),
		},
		Mocks: MocksConfig{
			Enable: os.Getenv("MOCKS_ENABLE") == "true",
		},
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnvOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultRegistryBaseURL is the public Companies House REST endpoint.
const DefaultRegistryBaseURL = "https://api.company-information.service.gov.uk"

// Config aggregates application-wide configuration values.
type Config struct {
	Port             string
	APIKey           string
	RootPath         string
	RegistryBaseURL  string
	SICTablePath     string
	BatchConcurrency int
	UpstreamTimeout  time.Duration
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8000"),
		APIKey:          strings.TrimSpace(os.Getenv("API_KEY")),
		RootPath:        normalizeRootPath(os.Getenv("ROOT_PATH")),
		RegistryBaseURL: getEnv("REGISTRY_BASE_URL", DefaultRegistryBaseURL),
		SICTablePath:    getEnv("SIC_CSV_PATH", "SIC07_CH_condensed_list_en.csv"),
	}

	if cfg.APIKey == "" {
		return nil, errors.New("API_KEY must be set")
	}

	concurrency, err := strconv.Atoi(getEnv("BATCH_CONCURRENCY", "4"))
	if err != nil || concurrency <= 0 {
		return nil, fmt.Errorf("invalid BATCH_CONCURRENCY value: %q", os.Getenv("BATCH_CONCURRENCY"))
	}
	cfg.BatchConcurrency = concurrency

	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "15s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT value: %q", os.Getenv("UPSTREAM_TIMEOUT"))
	}
	cfg.UpstreamTimeout = timeout

	return cfg, nil
}

// normalizeRootPath turns values like "api/", "/api" or "/" into "/api" or "".
func normalizeRootPath(value string) string {
	value = strings.Trim(strings.TrimSpace(value), "/")
	if value == "" {
		return ""
	}
	return "/" + value
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

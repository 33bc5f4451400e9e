package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first if present; a missing file
// is not an error. Recognized variables:
//
//	AMUMAL_BASE_URL    backend base URL
//	AMUMAL_PAGE_SIZE   feed page size
//	AMUMAL_STORAGE     local storage DSN
//	AMUMAL_TIMEOUT     request timeout, e.g. "12s"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("AMUMAL_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("AMUMAL_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("AMUMAL_STORAGE"); v != "" {
		cfg.StorageDSN = v
	}
	if v := os.Getenv("AMUMAL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
}

package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one exists in the working directory.
//
// Recognized variables:
//
//	FILEBOX_SERVER_URL      base URL of the backend API
//	FILEBOX_REQUEST_TIMEOUT per-request timeout (time.ParseDuration form)
//	FILEBOX_DOWNLOAD_DIR    directory downloads are saved into
//	FILEBOX_DB_PATH         local session database path
//
// Unset or malformed values leave the current Config value untouched.
func parseEnv(cfg *Config) {
	// Missing .env is not an error; real env vars still apply.
	_ = godotenv.Load()

	if v := os.Getenv("FILEBOX_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("FILEBOX_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("FILEBOX_DOWNLOAD_DIR"); v != "" {
		cfg.DownloadDir = v
	}
	if v := os.Getenv("FILEBOX_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}

// Package config loads application configuration from environment
// variables. Every value has a default so the process starts with an
// empty environment; a .env file, when present, is applied by main
// before Load runs.
package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration values.
type Config struct {
	Env       string // application environment ("dev", "prod")
	LogLevel  string // zap level name ("debug", "info", ...)
	StorePath string // path of the durable store file
	SeedDemo  bool   // seed the demo listing set on first run
}

// Load reads configuration from environment variables, falling back
// to defaults for anything unset.
func Load() Config {
	return Config{
		Env:       getenv("APP_ENV", "prod"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		StorePath: getenv("STORE_PATH", "data/rentfornest.db"),
		SeedDemo:  getenvBool("SEED_DEMO", true),
	}
}

// getenv retrieves an environment variable, returning def when the
// variable is unset or empty.
func getenv(key, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	return v
}

// getenvBool is like getenv for booleans. Values that do not parse
// fall back to the default rather than failing startup.
func getenvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Package logger builds the application's zap logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a logger for the given environment and level name.
// "dev" gets the development config (console encoding, stacktraces on
// warn); anything else gets the production config. An unknown level
// name falls back to info.
func New(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "dev" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

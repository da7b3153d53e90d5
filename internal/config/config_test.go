package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with empty environment", func(t *testing.T) {
		t.Setenv("APP_ENV", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("STORE_PATH", "")
		t.Setenv("SEED_DEMO", "")

		cfg := Load()
		assert.Equal(t, "prod", cfg.Env)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "data/rentfornest.db", cfg.StorePath)
		assert.True(t, cfg.SeedDemo)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", "dev")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("STORE_PATH", "/tmp/alt.db")
		t.Setenv("SEED_DEMO", "false")

		cfg := Load()
		assert.Equal(t, "dev", cfg.Env)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/tmp/alt.db", cfg.StorePath)
		assert.False(t, cfg.SeedDemo)
	})

	t.Run("bad boolean falls back to default", func(t *testing.T) {
		t.Setenv("SEED_DEMO", "yes please")
		assert.True(t, Load().SeedDemo)
	})
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("JIAI_DB replaces database path", func(t *testing.T) {
		t.Setenv("JIAI_DB", "/tmp/other.db")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	})

	t.Run("JIAI_TIMEOUT replaces api timeout", func(t *testing.T) {
		t.Setenv("JIAI_TIMEOUT", "9s")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 9*time.Second, cfg.GetAPITimeout())
	})

	t.Run("JIAI_LOG_LEVEL and JIAI_ADDR", func(t *testing.T) {
		t.Setenv("JIAI_LOG_LEVEL", "debug")
		t.Setenv("JIAI_ADDR", "127.0.0.1:9999")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	})

	t.Run("empty variables leave config alone", func(t *testing.T) {
		t.Setenv("JIAI_DB", "")
		t.Setenv("JIAI_TZ", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, DefaultConfig().Database.Path, cfg.Database.Path)
		assert.Equal(t, "Asia/Tokyo", cfg.Defaults.Timezone)
	})
}

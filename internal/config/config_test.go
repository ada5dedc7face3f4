package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhabit/zenhabit-engine/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, config.StorageDiskv, cfg.StorageDriver)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "gemini-3-flash-preview", cfg.GeminiModel)
	assert.Equal(t, 30*time.Second, cfg.GeminiTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ZENHABIT_HTTP_PORT", "9000")
	t.Setenv("ZENHABIT_STORAGE_DRIVER", "memory")
	t.Setenv("ZENHABIT_GEMINI_TIMEOUT", "45s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, config.StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 45*time.Second, cfg.GeminiTimeout)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("unknown storage driver", func(t *testing.T) {
		t.Setenv("ZENHABIT_STORAGE_DRIVER", "cassandra")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("redis driver requires a host", func(t *testing.T) {
		t.Setenv("ZENHABIT_STORAGE_DRIVER", "redis")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("postgres driver requires a dsn", func(t *testing.T) {
		t.Setenv("ZENHABIT_STORAGE_DRIVER", "postgres")

		_, err := config.Load()
		assert.Error(t, err)
	})
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver, "missing DATABASE_URL should fall back to memory")
	assert.Equal(t, int64(1<<20), cfg.MaxUploadBytes)
	assert.True(t, cfg.AutoSeedJobs)
}

func TestLoadConfigPostgres(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobs")
	t.Setenv("STORAGE_DRIVER", "POSTGRES")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("RATE_LIMIT_WRITE_THRESHOLD", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 20, cfg.RateLimitWriteThreshold)
}

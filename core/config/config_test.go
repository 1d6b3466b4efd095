package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Server.ReadOnly)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "reconciliation", cfg.Database.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logs", cfg.Audit.Dir)
	assert.Equal(t, "audit.log", cfg.Audit.File)
	assert.Equal(t, "reports", cfg.Storage.Bucket)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SERVER_READ_ONLY", "true")

	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Server.ReadOnly)
}

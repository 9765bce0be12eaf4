package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_USER", "memorymap")
	t.Setenv("DB_NAME", "memorymap")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "/uploads", cfg.Storage.PublicPrefix)
	assert.Equal(t, "5432", cfg.Database.DBPort)
}

func TestValidateRejectsMissingDatabase(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	cfg := LoadConfig()
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownStorageDriver(t *testing.T) {
	t.Setenv("DB_USER", "memorymap")
	t.Setenv("DB_NAME", "memorymap")
	t.Setenv("STORAGE_DRIVER", "s3")

	cfg := LoadConfig()
	assert.Error(t, cfg.Validate())
}

func TestValidateMinioRequiresEndpoint(t *testing.T) {
	t.Setenv("DB_USER", "memorymap")
	t.Setenv("DB_NAME", "memorymap")
	t.Setenv("STORAGE_DRIVER", "minio")
	t.Setenv("MINIO_ENDPOINT", "")

	cfg := LoadConfig()
	assert.Error(t, cfg.Validate())
}

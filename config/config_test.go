package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "*", cfg.App.CORSOrigin)
	assert.Equal(t, StoreBackendRedis, cfg.Store.Backend)
	assert.Equal(t, "edoc:", cfg.Store.Namespace)
	assert.Equal(t, 50, cfg.Store.ChatHistoryCap)
	assert.Equal(t, 100, cfg.Store.ReportCap)
	assert.Equal(t, 20, cfg.Store.ActivityCap)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiry)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LockoutDuration)
	assert.Equal(t, int64(50*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, 10, cfg.Upload.MaxFiles)
	assert.Equal(t, []string{"application/dicom"}, cfg.Upload.DICOMTypes)
	assert.Contains(t, cfg.Upload.ImageTypes, "image/png")
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	resetViper(t)
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("JWT_ACCESS_EXPIRY", "90m")
	t.Setenv("ASSISTANT_TIMEOUT", "soon")
	t.Setenv("UPLOAD_DOCUMENT_TYPES", " application/pdf , ,text/plain")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.Equal(t, 90*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 30*time.Second, cfg.Assistant.Timeout)
	assert.Equal(t, []string{"application/pdf", "text/plain"}, cfg.Upload.DocumentTypes)
}

func TestLoadConfig_InvalidStoreBackend(t *testing.T) {
	resetViper(t)
	t.Setenv("STORE_BACKEND", "etcd")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrInvalidStoreBackend)
}

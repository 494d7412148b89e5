package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// テスト用の環境変数を設定
	testCases := map[string]string{
		"PORT":                  "9090",
		"ENVIRONMENT":           "test",
		"LOG_LEVEL":             "debug",
		"DEFAULT_REGION":        "Delhi",
		"DEFAULT_FORECAST_DAYS": "14",
		"MAX_FORECAST_DAYS":     "90",
		"RANDOM_SEED":           "42",
		"CORS_ORIGINS":          "http://localhost:5173,https://medicore.example",
		"SHUTDOWN_TIMEOUT":      "3s",
	}
	for key, value := range testCases {
		t.Setenv(key, value)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Delhi", cfg.DefaultRegion)
	assert.Equal(t, 14, cfg.DefaultForecastDays)
	assert.Equal(t, 90, cfg.MaxForecastDays)
	assert.Equal(t, uint64(42), cfg.RandomSeed)
	assert.Equal(t, []string{"http://localhost:5173", "https://medicore.example"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsDev())
	assert.False(t, cfg.AllowAllOrigins())
}

func TestLoadConfigDefaults(t *testing.T) {
	// 環境変数をクリア
	vars := []string{
		"PORT", "ENVIRONMENT", "LOG_LEVEL", "SERVICE_VERSION", "DEFAULT_REGION",
		"DEFAULT_FORECAST_DAYS", "MAX_FORECAST_DAYS", "CATALOG_PATH", "RANDOM_SEED",
		"CORS_ORIGINS", "MONITORING_MAX_ENTRIES", "SHUTDOWN_TIMEOUT",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// デフォルト値の検証
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "1.0.0", cfg.ServiceVersion)
	assert.Equal(t, "Mumbai", cfg.DefaultRegion)
	assert.Equal(t, 30, cfg.DefaultForecastDays)
	assert.Equal(t, 365, cfg.MaxForecastDays)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsDev())
	assert.True(t, cfg.AllowAllOrigins())
}

func TestLoadConfigRejectsDefaultAboveMax(t *testing.T) {
	t.Setenv("DEFAULT_FORECAST_DAYS", "60")
	t.Setenv("MAX_FORECAST_DAYS", "30")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsMalformedNumber(t *testing.T) {
	t.Setenv("MAX_FORECAST_DAYS", "many")

	_, err := LoadConfig()
	assert.Error(t, err)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KAPITAL_DATA_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, 51.0, cfg.MajorityThreshold)
	assert.Equal(t, 2.0, cfg.RiskFreeRate)
	assert.Equal(t, 0.05, cfg.VaRConfidence)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.Insights.SmallCoalitionSize)
	assert.Equal(t, 2500.0, cfg.Insights.CoalitionHHI)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KAPITAL_DATA_DIR", t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("MAJORITY_THRESHOLD", "66.7")
	t.Setenv("DEV_MODE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 66.7, cfg.MajorityThreshold)
	assert.True(t, cfg.DevMode)
}

func TestValidateRejectsBadThreshold(t *testing.T) {
	t.Setenv("KAPITAL_DATA_DIR", t.TempDir())
	t.Setenv("MAJORITY_THRESHOLD", "150")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsBadConfidence(t *testing.T) {
	t.Setenv("KAPITAL_DATA_DIR", t.TempDir())
	t.Setenv("VAR_CONFIDENCE", "1.5")

	_, err := Load()
	assert.Error(t, err)
}

func TestOriginsSplitsAndTrims(t *testing.T) {
	cfg := &Config{AllowedOrigins: "https://a.example, https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())

	cfg = &Config{AllowedOrigins: ""}
	assert.Equal(t, []string{"*"}, cfg.Origins())
}

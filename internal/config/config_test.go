package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSheetURL = "https://docs.google.com/spreadsheets/d/e/example/pub?gid=0&single=true&output=csv"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SHEET_URL", testSheetURL)

	cfg, err := Load()
	require.NoError(t, err, "Should load with only the sheet URL set")

	assert.Equal(t, testSheetURL, cfg.SheetURL)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 9091, cfg.MetricsPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.WSEnabled)
	assert.False(t, cfg.EnableDailyReset)
	assert.Equal(t, "0 6 * * *", cfg.ResetSchedule)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SHEET_URL", testSheetURL)
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("WS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, ":9000", cfg.ServerAddr())
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.WSEnabled)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	base := Config{SheetURL: testSheetURL, PollInterval: 10 * time.Second}
	require.NoError(t, base.Validate())

	missing := base
	missing.SheetURL = ""
	assert.Error(t, missing.Validate(), "Sheet URL is required")

	notHTTP := base
	notHTTP.SheetURL = "ftp://example.com/sheet.csv"
	assert.Error(t, notHTTP.Validate(), "Only http(s) URLs are accepted")

	tooFast := base
	tooFast.PollInterval = 200 * time.Millisecond
	assert.Error(t, tooFast.Validate(), "Sub-second polling is rejected")
}

func TestConfig_Addrs(t *testing.T) {
	cfg := Config{ServerPort: 8080, MetricsPort: 9091}
	assert.Equal(t, ":8080", cfg.ServerAddr())
	assert.Equal(t, ":9091", cfg.MetricsAddr())
}

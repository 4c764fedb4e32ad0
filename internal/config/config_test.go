package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.File)
	assert.Equal(t, 5, cfg.HeadRows)
	assert.Equal(t, 10, cfg.MaxListedValues)
	assert.Equal(t, "static", cfg.Suggest)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WBINSPECT_FILE", "/data/sales.xlsx")
	t.Setenv("WBINSPECT_HEAD_ROWS", "3")
	t.Setenv("WBINSPECT_SUGGEST", "data")
	t.Setenv("WBINSPECT_LOG_LEVEL", "debug")

	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, "/data/sales.xlsx", cfg.File)
	assert.Equal(t, 3, cfg.HeadRows)
	assert.Equal(t, "data", cfg.Suggest)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFromDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("WBINSPECT_MAX_LISTED=4\nWBINSPECT_HEAD_ROWS=9\n"), 0644))
	t.Setenv("WBINSPECT_HEAD_ROWS", "2")
	// godotenv sets variables process-wide; register cleanup for the one it adds.
	t.Setenv("WBINSPECT_MAX_LISTED", "")
	require.NoError(t, os.Unsetenv("WBINSPECT_MAX_LISTED"))

	cfg, err := LoadFrom(envFile)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.MaxListedValues)
	assert.Equal(t, 2, cfg.HeadRows, "environment wins over the file")
}

func TestLoadFromMissingDotEnv(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadRejectsUnparsableValues(t *testing.T) {
	t.Setenv("WBINSPECT_HEAD_ROWS", "five")
	_, err := LoadFrom("")
	assert.Error(t, err)
}

func TestLoadLeavesRangeChecksToValidate(t *testing.T) {
	t.Setenv("WBINSPECT_HEAD_ROWS", "0")
	cfg, err := LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.HeadRows)
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsInvalidValues(t *testing.T) {
	valid := func() Config {
		return Config{HeadRows: 5, MaxListedValues: 10, Suggest: "static", LogLevel: "warn", LogFormat: "text"}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero head rows", func(c *Config) { c.HeadRows = 0 }},
		{"negative max listed", func(c *Config) { c.MaxListedValues = -1 }},
		{"unknown suggest", func(c *Config) { c.Suggest = "maybe" }},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }},
		{"unknown format", func(c *Config) { c.LogFormat = "xml" }},
	}

	base := valid()
	require.NoError(t, base.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

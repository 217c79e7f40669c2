package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLocalOverride(t *testing.T, fn func(*Config)) {
	t.Helper()
	orig := LocalOverride
	LocalOverride = fn
	t.Cleanup(func() { LocalOverride = orig })
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ";", cfg.Separator)
	assert.Len(t, cfg.Columns, 7)
}

func TestLoadConfigMissingFile(t *testing.T) {
	withLocalOverride(t, nil)
	path := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := LoadConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = LoadConfig(path, true)
	assert.Error(t, err)
}

func TestLoadConfigLayers(t *testing.T) {
	withLocalOverride(t, func(c *Config) {
		c.MaxPrint = 7
		c.Concurrency = 3
	})

	path := filepath.Join(t.TempDir(), "ohmcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
separator: ","
concurrency: 2
log:
  level: debug
  format: json
columns:
  - key: current
    label: "I [mA]"
    prefix: m
`), 0o644))

	t.Run("file over local", func(t *testing.T) {
		cfg, err := LoadConfig(path, true)
		require.NoError(t, err)
		assert.Equal(t, ",", cfg.Separator)
		assert.Equal(t, 2, cfg.Concurrency)
		assert.Equal(t, 7, cfg.MaxPrint)
		assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
		assert.Equal(t, []ColumnSpec{{Key: "current", Label: "I [mA]", Prefix: "m"}}, cfg.Columns)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("OHMCALC_CONCURRENCY", "9")
		t.Setenv("OHMCALC_LOG_LEVEL", "warn")
		t.Setenv("OHMCALC_XLSX", "out.xlsx")
		cfg, err := LoadConfig(path, true)
		require.NoError(t, err)
		assert.Equal(t, 9, cfg.Concurrency)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "out.xlsx", cfg.XLSXFile)
	})

	t.Run("bad env number ignored", func(t *testing.T) {
		t.Setenv("OHMCALC_CONCURRENCY", "lots")
		cfg, err := LoadConfig(path, true)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Concurrency)
	})
}

func TestLoadConfigBadYAML(t *testing.T) {
	withLocalOverride(t, nil)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: [\n"), 0o644))
	_, err := LoadConfig(path, true)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"empty separator": func(c *Config) { c.Separator = " " },
		"colon separator": func(c *Config) { c.Separator = ":" },
		"zero workers":    func(c *Config) { c.Concurrency = 0 },
		"negative print":  func(c *Config) { c.MaxPrint = -1 },
		"unknown column":  func(c *Config) { c.Columns = append(c.Columns, ColumnSpec{Key: "power"}) },
		"duplicate column": func(c *Config) {
			c.Columns = []ColumnSpec{{Key: "area"}, {Key: "area"}}
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLocalOverrideInstalled(t *testing.T) {
	require.NotNil(t, LocalOverride)
	cfg := DefaultConfig()
	LocalOverride(&cfg)
	assert.GreaterOrEqual(t, cfg.Concurrency, 1)
	require.NoError(t, cfg.Validate())
}

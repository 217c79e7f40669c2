// config.go
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColumnSpec は表・TSV の列。Prefix で表示単位を変える（"m" なら 1e-3 単位で表示）。
type ColumnSpec struct {
	Key    string `yaml:"key"`
	Label  string `yaml:"label"`
	Prefix string `yaml:"prefix"`
}

// LogConfig はログ設定
type LogConfig struct {
	Level  string `yaml:"level"`  // debug / info / warn / error
	Format string `yaml:"format"` // console / json
}

// Config は「ユーザー設定」をまとめたもの
type Config struct {
	Separator   string       `yaml:"separator"`
	Concurrency int          `yaml:"concurrency"`
	MaxPrint    int          `yaml:"max_print"` // コンソールに表示する最大件数（0なら制限なし）
	XLSXFile    string       `yaml:"xlsx_file"` // "" なら保存しない
	TSVFile     string       `yaml:"tsv_file"`  // "" なら保存しない
	Log         LogConfig    `yaml:"log"`
	Columns     []ColumnSpec `yaml:"columns"`
}

// LocalOverride は config_local.go で差し替える
var LocalOverride func(cfg *Config)

// 列のキー。値の取り出しは output.go の columnValue。
var columnKeys = map[string]bool{
	"resistance":  true,
	"resistivity": true,
	"length":      true,
	"diameter":    true,
	"area":        true,
	"voltage":     true,
	"current":     true,
}

// ============================================================
// ユーザー設定（ここから）
// ============================================================

func DefaultConfig() Config {
	columns := []ColumnSpec{
		{Key: "resistance", Label: "R [Ω]"},
		{Key: "resistivity", Label: "ρ [Ω·mm²/m]"},
		{Key: "length", Label: "L [m]"},
		{Key: "diameter", Label: "d [mm]"},
		{Key: "area", Label: "A [mm²]"},
		{Key: "voltage", Label: "U [V]"},
		{Key: "current", Label: "I [A]"},
	}

	return Config{
		Separator:   ";",
		Concurrency: 4,
		MaxPrint:    100,
		XLSXFile:    "",
		TSVFile:     "",
		Log:         LogConfig{Level: "info", Format: "console"},
		Columns:     columns,
	}
}

// ============================================================
// ユーザー設定（ここまで）
// ============================================================

// LoadConfig: DefaultConfig → LocalOverride → YAML → 環境変数 の順に重ねる。
// explicit が false なら path が無くてもエラーにしない。
func LoadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()
	if LocalOverride != nil {
		LocalOverride(&cfg)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("OHMCALC_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("OHMCALC_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Concurrency = n
		}
	}
	if v := os.Getenv("OHMCALC_XLSX"); v != "" {
		c.XLSXFile = v
	}
	if v := os.Getenv("OHMCALC_TSV"); v != "" {
		c.TSVFile = v
	}
}

// Validate は設定の矛盾を調べる
func (c Config) Validate() error {
	if strings.TrimSpace(c.Separator) == "" {
		return errors.New("config: separator must not be empty")
	}
	if c.Separator == ":" {
		return errors.New("config: ':' is the value/unit separator and cannot separate tokens")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("config: concurrency must be >= 1 (got %d)", c.Concurrency)
	}
	if c.MaxPrint < 0 {
		return fmt.Errorf("config: max_print must be >= 0 (got %d)", c.MaxPrint)
	}
	seen := map[string]bool{}
	for _, col := range c.Columns {
		if !columnKeys[col.Key] {
			return fmt.Errorf("config: unknown column key %q", col.Key)
		}
		if seen[col.Key] {
			return fmt.Errorf("config: duplicate column key %q", col.Key)
		}
		seen[col.Key] = true
	}
	return nil
}

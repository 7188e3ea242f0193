package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pnlfolio/pnlfolio/internal/report"
)

// Config represents the top-level pnlfolio.yaml configuration.
type Config struct {
	Report ReportConfig `yaml:"report"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ReportConfig controls the analytics pipeline. The exclusion set and
// trade label live here so variant log formats can be supported
// without code changes.
type ReportConfig struct {
	ExcludedTypes []string `yaml:"excluded_types"`
	TradeType     string   `yaml:"trade_type"`
	DateLayouts   []string `yaml:"date_layouts,omitempty"`
}

// ServerConfig controls the serve command.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a pnlfolio.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the standard Deribit-log settings.
func Default() *Config {
	opts := report.DefaultOptions()
	return &Config{
		Report: ReportConfig{
			ExcludedTypes: opts.ExcludedTypes,
			TradeType:     opts.TradeType,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Options maps the report section to pipeline options.
func (c *Config) Options() report.Options {
	return report.Options{
		ExcludedTypes: c.Report.ExcludedTypes,
		TradeType:     c.Report.TradeType,
	}
}

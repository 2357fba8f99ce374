// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/fit-estimator/internal/fitting"
	"github.com/jonathan/fit-estimator/internal/sizechart"
)

// Environment variables read by ApplyEnv.
const (
	EnvChart     = "FIT_AGENT_CHART"
	EnvChartFile = "FIT_AGENT_CHART_FILE"
	EnvWorkers   = "FIT_AGENT_WORKERS"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Size chart
	Chart     string `json:"chart,omitempty"`      // Built-in chart category (men-shirt, women-shirt)
	ChartFile string `json:"chart_file,omitempty"` // Path to a custom chart (JSON or YAML); overrides chart

	// Mesh
	RigFile string `json:"rig_file,omitempty"` // Path to a joint list of the garment mesh

	// Behavior
	Workers int  `json:"workers,omitempty" validate:"gte=0,lte=256"` // Batch concurrency
	Verbose bool `json:"verbose,omitempty"`                          // Print detailed summaries
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Chart:   sizechart.MenShirt.String(),
		Workers: fitting.DefaultWorkers,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from environment variables. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvChart); v != "" {
		c.Chart = v
	}
	if v := getenv(EnvChartFile); v != "" {
		c.ChartFile = v
	}
	if v := getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: 'workers' must be between 0 and 256")
	}

	if c.Chart != "" && c.ChartFile == "" {
		if _, err := sizechart.ParseCategory(c.Chart); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	// Validate file paths exist (if specified)
	if c.ChartFile != "" {
		if _, err := os.Stat(c.ChartFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: chart file not found: %s", c.ChartFile)
		}
	}
	if c.RigFile != "" {
		if _, err := os.Stat(c.RigFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: rig file not found: %s", c.RigFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Chart == "" {
		result.Chart = defaults.Chart
	}
	if result.ChartFile == "" {
		result.ChartFile = defaults.ChartFile
	}
	if result.RigFile == "" {
		result.RigFile = defaults.RigFile
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		if defaults.Workers > 0 {
			result.Workers = defaults.Workers
		} else {
			result.Workers = fitting.DefaultWorkers
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveChart returns the chart this configuration selects: the chart file when set,
// otherwise the built-in category.
func (c *Config) ResolveChart() (*sizechart.Chart, error) {
	if c.ChartFile != "" {
		return sizechart.LoadChart(c.ChartFile)
	}
	name := c.Chart
	if name == "" {
		name = sizechart.MenShirt.String()
	}
	return sizechart.BuiltinByName(name)
}

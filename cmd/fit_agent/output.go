package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jonathan/fit-estimator/internal/config"
	"github.com/spf13/cobra"
)

// resolveConfig layers defaults, an optional config file, environment and flag overrides.
func resolveConfig(path string, flags config.Config) (*config.Config, error) {
	cfg := config.Defaults()

	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if flags.Chart != "" {
		cfg.Chart = flags.Chart
		// An explicit built-in chart wins over a file picked up from config or env.
		cfg.ChartFile = ""
	}
	if flags.ChartFile != "" {
		cfg.ChartFile = flags.ChartFile
	}
	if flags.RigFile != "" {
		cfg.RigFile = flags.RigFile
	}
	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}
	if flags.Verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// writeJSON marshals v with indentation to path, or to the command's stdout when path is empty.
func writeJSON(cmd *cobra.Command, path string, v interface{}) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(jsonOutput))
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// commandLogger writes structured warnings to the command's stderr.
func commandLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
}

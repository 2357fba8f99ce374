package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/fit-estimator/internal/config"
	"github.com/jonathan/fit-estimator/internal/fitting"
	"github.com/jonathan/fit-estimator/internal/schemas"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run fitting sessions for many profiles",
	Long:  "Reads a list of profiles (JSON or YAML), runs each as an independent fitting session concurrently, and writes the results in input order. Invalid profiles are reported per item.",
	RunE:  runBatch,
}

var (
	batchInput   string
	batchOutput  string
	batchChart   string
	batchConfig  string
	batchWorkers int
)

// batchFile is the batch input layout.
type batchFile struct {
	Chart    string            `json:"chart,omitempty" yaml:"chart,omitempty"`
	Profiles []fitting.Request `json:"profiles" yaml:"profiles"`
}

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "in", "i", "", "Path to input profiles file (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output results JSON file (required)")
	batchCmd.Flags().StringVar(&batchChart, "chart", "", "Built-in size chart; overrides the file's chart")
	batchCmd.Flags().StringVarP(&batchConfig, "config", "c", "", "Path to config JSON file")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent sessions")

	if err := batchCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func loadBatchFile(path string) (*batchFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", path, err)
	}

	var raw interface{}
	var bf batchFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse batch YAML: %w", err)
		}
		if err := yaml.Unmarshal(content, &bf); err != nil {
			return nil, fmt.Errorf("failed to parse batch YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal batch JSON: %w", err)
		}
		if err := json.Unmarshal(content, &bf); err != nil {
			return nil, fmt.Errorf("failed to unmarshal batch JSON: %w", err)
		}
	}

	if err := schemas.ValidateDocument(schemas.BatchInput, raw); err != nil {
		return nil, fmt.Errorf("batch file %s is invalid: %w", path, err)
	}

	return &bf, nil
}

func runBatch(cmd *cobra.Command, _ []string) error {
	// 1. Load input
	bf, err := loadBatchFile(batchInput)
	if err != nil {
		return err
	}

	// 2. Resolve configuration; flag beats file beats config
	chartName := batchChart
	if chartName == "" {
		chartName = bf.Chart
	}
	cfg, err := resolveConfig(batchConfig, config.Config{Chart: chartName, Workers: batchWorkers})
	if err != nil {
		return err
	}

	chart, err := cfg.ResolveChart()
	if err != nil {
		return fmt.Errorf("failed to load size chart: %w", err)
	}

	// 3. Run sessions
	items, err := fitting.RunBatch(commandContext(cmd), bf.Profiles, chart, cfg.Workers)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	// 4. Write results
	if err := writeJSON(cmd, batchOutput, items); err != nil {
		return err
	}

	failed := 0
	for _, item := range items {
		if item.Error != "" {
			failed++
		}
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Processed %d profiles (%d failed) to %s\n", len(items), failed, batchOutput)

	return nil
}

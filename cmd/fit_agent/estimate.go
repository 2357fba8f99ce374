package main

import (
	"fmt"

	"github.com/jonathan/fit-estimator/internal/config"
	"github.com/jonathan/fit-estimator/internal/fitting"
	"github.com/jonathan/fit-estimator/internal/joints"
	"github.com/jonathan/fit-estimator/internal/observability"
	"github.com/jonathan/fit-estimator/internal/profile"
	"github.com/jonathan/fit-estimator/internal/schemas"
	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate measurements and recommend a shirt size",
	Long:  "Runs one fitting session: validates the profile, resolves joint scales for mesh deformation, estimates garment measurements and recommends a size from the selected chart, producing a FitResult JSON.",
	RunE:  runEstimate,
}

var (
	estimateHeight    float64
	estimateWeight    float64
	estimateArchetype string
	estimateChart     string
	estimateChartFile string
	estimateRig       string
	estimateConfig    string
	estimateOutput    string
	estimateVerbose   bool
)

func init() {
	estimateCmd.Flags().Float64Var(&estimateHeight, "height", 0, "Height in cm, 100-250 (required)")
	estimateCmd.Flags().Float64Var(&estimateWeight, "weight", 0, "Weight in kg, 30-200 (required)")
	estimateCmd.Flags().StringVarP(&estimateArchetype, "archetype", "a", "", "Body-shape archetype key (required)")
	estimateCmd.Flags().StringVar(&estimateChart, "chart", "", "Built-in size chart (men-shirt, women-shirt)")
	estimateCmd.Flags().StringVar(&estimateChartFile, "chart-file", "", "Path to a custom size chart (JSON or YAML)")
	estimateCmd.Flags().StringVar(&estimateRig, "rig", "", "Path to the garment mesh joint list (JSON or YAML)")
	estimateCmd.Flags().StringVarP(&estimateConfig, "config", "c", "", "Path to config JSON file")
	estimateCmd.Flags().StringVarP(&estimateOutput, "out", "o", "", "Path to output FitResult JSON file (default stdout)")
	estimateCmd.Flags().BoolVarP(&estimateVerbose, "verbose", "v", false, "Print human-readable summaries")

	for _, name := range []string{"height", "weight", "archetype"} {
		if err := estimateCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	// 1. Resolve configuration
	cfg, err := resolveConfig(estimateConfig, config.Config{
		Chart:     estimateChart,
		ChartFile: estimateChartFile,
		RigFile:   estimateRig,
		Verbose:   estimateVerbose,
	})
	if err != nil {
		return err
	}

	// 2. Validate profile
	p, err := profile.NewFromKey(estimateHeight, estimateWeight, estimateArchetype)
	if err != nil {
		return fmt.Errorf("failed to build profile: %w", err)
	}

	// 3. Select chart
	chart, err := cfg.ResolveChart()
	if err != nil {
		return fmt.Errorf("failed to load size chart: %w", err)
	}

	// 4. Run session
	result, err := fitting.NewSession(p, chart).Run()
	if err != nil {
		return fmt.Errorf("fitting session failed: %w", err)
	}

	// 5. Apply to mesh rig (missing joints are reported, not fatal)
	if cfg.RigFile != "" {
		rig, err := joints.LoadRig(cfg.RigFile)
		if err != nil {
			return fmt.Errorf("failed to load rig: %w", err)
		}
		result.ApplyToRig(rig, commandLogger(cmd))
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintFitResult(result)
	}

	// 6. Validate output against schema (non-fatal)
	if err := schemas.ValidateDocument(schemas.FitResult, result); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Output validation failed: %v\n", err)
	}

	// 7. Write result
	if err := writeJSON(cmd, estimateOutput, result); err != nil {
		return err
	}

	if estimateOutput != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recommended size %s (%s) written to %s\n",
			result.Recommendation.Size, result.Chart, estimateOutput)
	}

	return nil
}

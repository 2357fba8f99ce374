package main

import (
	"fmt"

	"github.com/jonathan/fit-estimator/internal/observability"
	"github.com/jonathan/fit-estimator/internal/sizechart"
	"github.com/spf13/cobra"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "List size charts",
	Long:  "Prints the built-in size charts, or a single chart from --chart or --chart-file, in chart iteration order. Loading a chart file also validates it.",
	RunE:  runCharts,
}

var (
	chartsName string
	chartsFile string
	chartsJSON bool
)

// chartOutput is the JSON form of a chart, matching the chart file layout.
type chartOutput struct {
	Category string            `json:"category"`
	Sizes    []sizechart.Entry `json:"sizes"`
}

func init() {
	chartsCmd.Flags().StringVar(&chartsName, "chart", "", "Built-in chart to print")
	chartsCmd.Flags().StringVar(&chartsFile, "chart-file", "", "Chart file to load and print")
	chartsCmd.Flags().BoolVar(&chartsJSON, "json", false, "Print as JSON")
	rootCmd.AddCommand(chartsCmd)
}

func runCharts(cmd *cobra.Command, _ []string) error {
	var charts []*sizechart.Chart

	switch {
	case chartsFile != "":
		c, err := sizechart.LoadChart(chartsFile)
		if err != nil {
			return fmt.Errorf("failed to load chart: %w", err)
		}
		charts = append(charts, c)
	case chartsName != "":
		c, err := sizechart.BuiltinByName(chartsName)
		if err != nil {
			return err
		}
		charts = append(charts, c)
	default:
		for _, cat := range sizechart.Categories() {
			c, err := sizechart.Builtin(cat)
			if err != nil {
				return err
			}
			charts = append(charts, c)
		}
	}

	if chartsJSON {
		out := make([]chartOutput, 0, len(charts))
		for _, c := range charts {
			out = append(out, chartOutput{Category: c.Category(), Sizes: c.Entries()})
		}
		return writeJSON(cmd, "", out)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	for _, c := range charts {
		printer.PrintChart(c)
	}
	return nil
}

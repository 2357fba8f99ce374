// Package matching selects the best-fitting size from a chart and classifies fit per region.
package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/fit-estimator/internal/types"
)

// Summarize creates a brief explanation of the fit for display.
func Summarize(size string, report types.FitReport) string {
	if report.AllFit() {
		return fmt.Sprintf("Size %s fits at shoulder, chest and waist", size)
	}

	var tight, loose []string
	for _, region := range types.Regions {
		switch report[region] {
		case types.FitTooSmall:
			tight = append(tight, string(region))
		case types.FitTooLarge:
			loose = append(loose, string(region))
		}
	}

	parts := []string{fmt.Sprintf("Closest size is %s", size)}
	if len(tight) > 0 {
		parts = append(parts, fmt.Sprintf("Tight at %s", strings.Join(tight, ", ")))
	}
	if len(loose) > 0 {
		parts = append(parts, fmt.Sprintf("Loose at %s", strings.Join(loose, ", ")))
	}

	return strings.Join(parts, ". ")
}

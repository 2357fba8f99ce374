// Package matching selects the best-fitting size from a chart and classifies fit per region.
package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/fit-estimator/internal/sizechart"
	"github.com/jonathan/fit-estimator/internal/types"
)

// Distance weights. Chest dominates.
const (
	chestWeight    = 2.0
	waistWeight    = 1.5
	shoulderWeight = 1.2
)

// Distance is the weighted absolute difference between a chart size and a user's measurements.
func Distance(user, ref types.GarmentMeasurement) float64 {
	return math.Abs(ref.Chest-user.Chest)*chestWeight +
		math.Abs(ref.Waist-user.Waist)*waistWeight +
		math.Abs(ref.Shoulder-user.Shoulder)*shoulderWeight
}

// FindBestSize picks the size with the smallest Distance. On equal distance the
// size that comes first in the chart wins. The fit report compares the user with
// the selected size only.
func FindBestSize(user types.GarmentMeasurement, chart *sizechart.Chart) (*types.SizeRecommendation, error) {
	if chart == nil || chart.Len() == 0 {
		return nil, &Error{Message: "cannot match against an empty size chart"}
	}

	var best sizechart.Entry
	found := false
	bestDistance := math.Inf(1)
	for _, entry := range chart.Entries() {
		d := Distance(user, entry.Measurement)
		if d < bestDistance {
			bestDistance = d
			best = entry
			found = true
		}
	}
	// NaN or infinite measurements compare false against every distance.
	if !found {
		return nil, &Error{Message: fmt.Sprintf("no size in chart %s (%s) matches measurements %+v",
			chart.Category(), strings.Join(chart.Labels(), ", "), user)}
	}

	report := ClassifyFit(user, best.Measurement)

	return &types.SizeRecommendation{
		Size:      best.Label,
		Distance:  bestDistance,
		Reference: best.Measurement,
		Fit:       report,
		Notes:     Summarize(best.Label, report),
	}, nil
}

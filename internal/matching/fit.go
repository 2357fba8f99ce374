// Package matching selects the best-fitting size from a chart and classifies fit per region.
package matching

import "github.com/jonathan/fit-estimator/internal/types"

// Band is the inclusive range of garment-minus-body ease, in cm, that counts as a good fit.
type Band struct {
	Min float64
	Max float64
}

// Ease bands per region. A shirt shoulder may sit slightly inside the body line;
// chest and waist need room.
var (
	ShoulderBand = Band{Min: -1, Max: 3}
	ChestBand    = Band{Min: 4, Max: 12}
	WaistBand    = Band{Min: 2, Max: 10}
)

// ClassifyRegion compares a garment value with a body value under band.
func ClassifyRegion(garment, body float64, band Band) types.FitVerdict {
	lower := body + band.Min
	upper := body + band.Max

	switch {
	case garment < lower:
		return types.FitTooSmall
	case garment > upper:
		return types.FitTooLarge
	default:
		return types.FitGood
	}
}

// ClassifyFit returns a verdict for shoulder, chest and waist of ref against user.
// It always succeeds.
func ClassifyFit(user, ref types.GarmentMeasurement) types.FitReport {
	return types.FitReport{
		types.RegionShoulder: ClassifyRegion(ref.Shoulder, user.Shoulder, ShoulderBand),
		types.RegionChest:    ClassifyRegion(ref.Chest, user.Chest, ChestBand),
		types.RegionWaist:    ClassifyRegion(ref.Waist, user.Waist, WaistBand),
	}
}

//nolint:revive // types is a standard Go package name pattern
package types

// FitVerdict classifies how a garment region fits the wearer.
type FitVerdict string

const (
	FitTooSmall FitVerdict = "too-small"
	FitGood     FitVerdict = "fits"
	FitTooLarge FitVerdict = "too-large"
)

// Region names a body region that receives a fit verdict.
type Region string

const (
	RegionShoulder Region = "shoulder"
	RegionChest    Region = "chest"
	RegionWaist    Region = "waist"
)

// Regions lists the classified regions in display order.
var Regions = []Region{RegionShoulder, RegionChest, RegionWaist}

// FitReport maps each region to its verdict for the selected size.
type FitReport map[Region]FitVerdict

// AllFit reports whether every region fits.
func (r FitReport) AllFit() bool {
	if len(r) == 0 {
		return false
	}
	for _, v := range r {
		if v != FitGood {
			return false
		}
	}
	return true
}

// Count returns how many regions carry the given verdict.
func (r FitReport) Count(verdict FitVerdict) int {
	n := 0
	for _, v := range r {
		if v == verdict {
			n++
		}
	}
	return n
}

// SizeRecommendation is the matcher output: the chosen label, its distance and the per-region fit.
type SizeRecommendation struct {
	Size      string             `json:"size"`
	Distance  float64            `json:"distance"`
	Reference GarmentMeasurement `json:"reference"`
	Fit       FitReport          `json:"fit"`
	Notes     string             `json:"notes"`
}

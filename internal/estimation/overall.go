// Package estimation converts height, weight and an archetype vector into garment measurements.
package estimation

// Reference body. Both ratios are 1.0 at these values.
const (
	referenceHeightCm = 170.0
	referenceWeightKg = 65.0
)

// Weights for the overall scale.
const (
	heightScaleWeight = 0.7
	weightScaleWeight = 0.3
)

// ComputeOverallScale returns the uniform size factor for a body relative to the reference body.
// It is total: out-of-range inputs produce a number, never a panic. Range checks belong to profile.New.
func ComputeOverallScale(height, weight float64) float64 {
	heightRatio := height / referenceHeightCm
	weightRatio := weight / referenceWeightKg

	return heightScaleWeight*heightRatio + weightScaleWeight*weightRatio
}

// Package estimation converts height, weight and an archetype vector into garment measurements.
package estimation

import "github.com/jonathan/fit-estimator/internal/types"

// Baseline measurements of the reference body, in cm.
const (
	baseChestCm     = 88.0
	baseWaistCm     = 78.0
	baseShoulderCm  = 42.0
	baseArmLengthCm = 58.0
	baseLengthCm    = 66.0
)

// Growth per cm of height or kg of weight away from the reference body.
const (
	chestPerKg       = 0.8
	waistPerKg       = 0.9
	shoulderPerCm    = 0.15
	armLengthPerCm   = 0.2
	torsoLengthPerCm = 0.15
)

// EstimateMeasurements estimates body measurements from height, weight and an archetype vector.
// The vector scales girth (shoulder, chest, waist) only; length and arm length depend on height alone.
func EstimateMeasurements(height, weight float64, vector types.ScaleVector) types.GarmentMeasurement {
	dh := height - referenceHeightCm
	dw := weight - referenceWeightKg

	chest := baseChestCm + dw*chestPerKg
	waist := baseWaistCm + dw*waistPerKg
	shoulder := baseShoulderCm + dh*shoulderPerCm
	armLength := baseArmLengthCm + dh*armLengthPerCm
	length := baseLengthCm + dh*torsoLengthPerCm

	return types.GarmentMeasurement{
		Shoulder:  shoulder * vector.Shoulder,
		Chest:     chest * vector.Chest,
		Waist:     waist * vector.Waist,
		Length:    length,
		ArmLength: armLength,
	}
}

// ApplyOverallScale multiplies shoulder, chest and waist by the overall scale.
// Length and arm length are returned unchanged.
func ApplyOverallScale(m types.GarmentMeasurement, overallScale float64) types.GarmentMeasurement {
	m.Shoulder *= overallScale
	m.Chest *= overallScale
	m.Waist *= overallScale
	return m
}

// Estimate runs both scaling stages: archetype vector first, then the overall scale.
func Estimate(height, weight float64, vector types.ScaleVector) types.GarmentMeasurement {
	m := EstimateMeasurements(height, weight, vector)
	return ApplyOverallScale(m, ComputeOverallScale(height, weight))
}

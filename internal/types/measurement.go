//nolint:revive // types is a standard Go package name pattern
package types

// GarmentMeasurement is a set of shirt-relevant measurements in centimeters.
// It is used both for a user's estimated body and for a size chart's reference garment.
type GarmentMeasurement struct {
	Shoulder  float64 `json:"shoulder" yaml:"shoulder" validate:"gt=0"`
	Chest     float64 `json:"chest" yaml:"chest" validate:"gt=0"`
	Waist     float64 `json:"waist" yaml:"waist" validate:"gt=0"`
	Length    float64 `json:"length" yaml:"length" validate:"gt=0"`
	ArmLength float64 `json:"arm_length" yaml:"arm_length" validate:"gt=0"`
}

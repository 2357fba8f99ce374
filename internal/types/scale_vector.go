// Package types provides type definitions for structured data used throughout the fit-estimator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ScaleVector holds the six girth multipliers of a body-shape archetype.
// Each component is relative to a neutral 1.0 baseline.
type ScaleVector struct {
	Shoulder float64 `json:"shoulder" yaml:"shoulder" validate:"gt=0"`
	Chest    float64 `json:"chest" yaml:"chest" validate:"gt=0"`
	Waist    float64 `json:"waist" yaml:"waist" validate:"gt=0"`
	Hip      float64 `json:"hip" yaml:"hip" validate:"gt=0"`
	Arm      float64 `json:"arm" yaml:"arm" validate:"gt=0"`
	Leg      float64 `json:"leg" yaml:"leg" validate:"gt=0"`
}

// NeutralScale is the all-1.0 vector.
var NeutralScale = ScaleVector{Shoulder: 1, Chest: 1, Waist: 1, Hip: 1, Arm: 1, Leg: 1}

// Validate reports an error if any component is not strictly positive.
func (v ScaleVector) Validate() error {
	validate := validator.New()
	if err := validate.Struct(v); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return fmt.Errorf("invalid scale vector: %s must be positive (got %v)", verrs[0].Field(), verrs[0].Value())
		}
		return fmt.Errorf("invalid scale vector: %w", err)
	}
	return nil
}

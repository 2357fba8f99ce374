package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleVector_Validate(t *testing.T) {
	assert.NoError(t, ScaleVector{Shoulder: 1.2, Chest: 1.1, Waist: 0.9, Hip: 0.9, Arm: 1.1, Leg: 1.0}.Validate())
	assert.NoError(t, NeutralScale.Validate())
}

func TestScaleVector_ValidateRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name   string
		vector ScaleVector
		field  string
	}{
		{"zero shoulder", ScaleVector{Shoulder: 0, Chest: 1, Waist: 1, Hip: 1, Arm: 1, Leg: 1}, "Shoulder"},
		{"negative waist", ScaleVector{Shoulder: 1, Chest: 1, Waist: -0.5, Hip: 1, Arm: 1, Leg: 1}, "Waist"},
		{"zero leg", ScaleVector{Shoulder: 1, Chest: 1, Waist: 1, Hip: 1, Arm: 1}, "Leg"},
		{"zero value", ScaleVector{}, "Shoulder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vector.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

// Package profile builds validated user profiles for a fitting session.
package profile

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/fit-estimator/internal/archetypes"
	"github.com/jonathan/fit-estimator/internal/estimation"
)

// Supported input ranges (inclusive).
const (
	MinHeightCm = 100.0
	MaxHeightCm = 250.0
	MinWeightKg = 30.0
	MaxWeightKg = 200.0
)

// UserProfile is the validated input of a fitting session. Construct it with New.
type UserProfile struct {
	Height    float64        `json:"height" validate:"gte=100,lte=250"`
	Weight    float64        `json:"weight" validate:"gte=30,lte=200"`
	Archetype archetypes.Key `json:"archetype"`
}

var validate = validator.New()

// New validates height, weight and archetype and returns the profile.
func New(height, weight float64, archetype archetypes.Key) (*UserProfile, error) {
	p := UserProfile{Height: height, Weight: weight, Archetype: archetype}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the ranges and the archetype again. Fields are exported for
// encoding, so consumers call this before using a profile they did not build.
// NaN fails every range check.
func (p UserProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return toInvalidProfile(p, err)
	}
	if !p.Archetype.Valid() {
		return &archetypes.UnknownArchetypeError{Key: p.Archetype.String()}
	}
	return nil
}

// NewFromKey is New with the archetype given by its string identifier.
func NewFromKey(height, weight float64, archetype string) (*UserProfile, error) {
	k, err := archetypes.Parse(archetype)
	if err != nil {
		return nil, err
	}
	return New(height, weight, k)
}

// OverallScale returns the uniform body scale for this profile.
func (p *UserProfile) OverallScale() float64 {
	return estimation.ComputeOverallScale(p.Height, p.Weight)
}

func toInvalidProfile(p UserProfile, err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &InvalidProfileError{Message: "validation failed", Cause: err}
	}

	// First failing field only
	fe := verrs[0]
	switch fe.Field() {
	case "Height":
		return &InvalidProfileError{
			Field:   "height",
			Value:   p.Height,
			Message: fmt.Sprintf("must be between %v and %v cm", MinHeightCm, MaxHeightCm),
			Cause:   err,
		}
	case "Weight":
		return &InvalidProfileError{
			Field:   "weight",
			Value:   p.Weight,
			Message: fmt.Sprintf("must be between %v and %v kg", MinWeightKg, MaxWeightKg),
			Cause:   err,
		}
	}
	return &InvalidProfileError{Message: fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()), Cause: err}
}

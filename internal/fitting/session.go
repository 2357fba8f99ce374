// Package fitting runs a complete fitting session: profile to deformation plan, measurements and size.
package fitting

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonathan/fit-estimator/internal/archetypes"
	"github.com/jonathan/fit-estimator/internal/estimation"
	"github.com/jonathan/fit-estimator/internal/joints"
	"github.com/jonathan/fit-estimator/internal/matching"
	"github.com/jonathan/fit-estimator/internal/profile"
	"github.com/jonathan/fit-estimator/internal/sizechart"
	"github.com/jonathan/fit-estimator/internal/types"
)

// Result is everything a renderer and a results panel need from one session.
type Result struct {
	SessionID      uuid.UUID                 `json:"session_id"`
	Profile        profile.UserProfile       `json:"profile"`
	ArchetypeName  string                    `json:"archetype_name"`
	Chart          string                    `json:"chart"`
	OverallScale   float64                   `json:"overall_scale"`
	Deformation    types.DeformationPlan     `json:"deformation"`
	Measurements   types.GarmentMeasurement  `json:"measurements"`
	Recommendation *types.SizeRecommendation `json:"recommendation"`
	Rig            *types.ApplyReport        `json:"rig,omitempty"`
}

// Session holds the inputs of one fitting. It keeps no state between runs.
type Session struct {
	ID      uuid.UUID
	Profile *profile.UserProfile
	Chart   *sizechart.Chart
}

// NewSession creates a session with a fresh id.
func NewSession(p *profile.UserProfile, chart *sizechart.Chart) *Session {
	return &Session{
		ID:      uuid.New(),
		Profile: p,
		Chart:   chart,
	}
}

// Run executes the pipeline: archetype lookup, overall scale, deformation plan,
// measurement estimate with both scaling stages, then size matching.
func (s *Session) Run() (*Result, error) {
	if s.Profile == nil {
		return nil, fmt.Errorf("session %s has no profile", s.ID)
	}
	// The profile may have been edited since New validated it.
	if err := s.Profile.Validate(); err != nil {
		return nil, err
	}

	archetype, err := archetypes.Get(s.Profile.Archetype)
	if err != nil {
		return nil, fmt.Errorf("failed to look up archetype: %w", err)
	}

	overall := s.Profile.OverallScale()
	plan := joints.PlanDeformation(archetype.Scale, overall)
	measurements := estimation.Estimate(s.Profile.Height, s.Profile.Weight, archetype.Scale)

	recommendation, err := matching.FindBestSize(measurements, s.Chart)
	if err != nil {
		return nil, fmt.Errorf("failed to match size: %w", err)
	}

	return &Result{
		SessionID:      s.ID,
		Profile:        *s.Profile,
		ArchetypeName:  archetype.Name,
		Chart:          s.Chart.Category(),
		OverallScale:   overall,
		Deformation:    plan,
		Measurements:   measurements,
		Recommendation: recommendation,
	}, nil
}

// ApplyToRig applies the result's joint scales to rig and records the report on the result.
// Missing joints are logged on logger.
func (r *Result) ApplyToRig(rig joints.Skeleton, logger *slog.Logger) *types.ApplyReport {
	r.Rig = joints.Apply(rig, r.Deformation.Joints, logger)
	return r.Rig
}

// Package joints maps archetype scale vectors onto named garment rig joints.
package joints

import "github.com/jonathan/fit-estimator/internal/types"

// Joint names as rigged on the garment mesh.
const (
	ShoulderLeft  = "shoulder_L"
	ShoulderRight = "shoulder_R"
	Chest         = "chest"
	Waist         = "waist"
	Hip           = "hip"
	ArmLeft       = "arm_L"
	ArmRight      = "arm_R"
)

// axes selects which axes of a joint a dimension scales.
type axes struct {
	x, y, z bool
}

var (
	xOnly = axes{x: true}
	xy    = axes{x: true, y: true}
)

// binding ties one scale-vector dimension to the joints it drives.
type binding struct {
	joint     string
	axes      axes
	dimension func(types.ScaleVector) float64
}

// Leg is reserved: no rig joint consumes it.
var bindings = []binding{
	{ShoulderLeft, xOnly, func(v types.ScaleVector) float64 { return v.Shoulder }},
	{ShoulderRight, xOnly, func(v types.ScaleVector) float64 { return v.Shoulder }},
	{Chest, xy, func(v types.ScaleVector) float64 { return v.Chest }},
	{Waist, xy, func(v types.ScaleVector) float64 { return v.Waist }},
	{Hip, xy, func(v types.ScaleVector) float64 { return v.Hip }},
	{ArmLeft, xy, func(v types.ScaleVector) float64 { return v.Arm }},
	{ArmRight, xy, func(v types.ScaleVector) float64 { return v.Arm }},
}

// Names returns the resolved joint names in binding order.
func Names() []string {
	names := make([]string, len(bindings))
	for i, b := range bindings {
		names[i] = b.joint
	}
	return names
}

// ResolveJointScales converts a scale vector into per-joint scale triples.
// The result does not depend on any particular mesh.
func ResolveJointScales(vector types.ScaleVector) types.JointScaleMap {
	out := make(types.JointScaleMap, len(bindings))
	for _, b := range bindings {
		s := b.dimension(vector)
		scale := types.IdentityScale
		if b.axes.x {
			scale.X = s
		}
		if b.axes.y {
			scale.Y = s
		}
		if b.axes.z {
			scale.Z = s
		}
		out[b.joint] = scale
	}
	return out
}

// PlanDeformation pairs the joint scales with the uniform model scale.
func PlanDeformation(vector types.ScaleVector, overallScale float64) types.DeformationPlan {
	return types.DeformationPlan{
		ModelScale: overallScale,
		Joints:     ResolveJointScales(vector),
	}
}

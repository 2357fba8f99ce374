//nolint:revive // types is a standard Go package name pattern
package types

// JointScale is a per-axis scale triple applied to a mesh joint.
type JointScale struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// IdentityScale leaves a joint unchanged.
var IdentityScale = JointScale{X: 1, Y: 1, Z: 1}

// JointScaleMap maps a joint name to the scale it should receive.
type JointScaleMap map[string]JointScale

// DeformationPlan is what a mesh renderer needs to deform a garment:
// a uniform model scale followed by per-joint scales.
type DeformationPlan struct {
	ModelScale float64       `json:"model_scale"`
	Joints     JointScaleMap `json:"joints"`
}

// JointStatus records whether a joint scale reached the mesh.
type JointStatus string

const (
	JointApplied JointStatus = "applied"
	JointSkipped JointStatus = "skipped"
)

// JointApplication is the outcome for a single joint.
type JointApplication struct {
	Joint  string      `json:"joint"`
	Scale  JointScale  `json:"scale"`
	Status JointStatus `json:"status"`
}

// ApplyReport lists the outcome of applying a JointScaleMap to a rig, in joint order.
type ApplyReport struct {
	Joints []JointApplication `json:"joints"`
}

// Applied returns the number of joints that were scaled.
func (r *ApplyReport) Applied() int {
	return r.count(JointApplied)
}

// Skipped returns the number of joints absent from the rig.
func (r *ApplyReport) Skipped() int {
	return r.count(JointSkipped)
}

// SkippedJoints returns the names of joints absent from the rig.
func (r *ApplyReport) SkippedJoints() []string {
	var names []string
	for _, j := range r.Joints {
		if j.Status == JointSkipped {
			names = append(names, j.Joint)
		}
	}
	return names
}

func (r *ApplyReport) count(status JointStatus) int {
	n := 0
	for _, j := range r.Joints {
		if j.Status == status {
			n++
		}
	}
	return n
}

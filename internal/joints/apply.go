// Package joints maps archetype scale vectors onto named garment rig joints.
package joints

import (
	"log/slog"
	"sort"

	"github.com/jonathan/fit-estimator/internal/types"
)

// Skeleton is the part of a mesh rig that Apply needs.
type Skeleton interface {
	HasJoint(name string) bool
	SetScale(name string, scale types.JointScale)
}

// Apply sets each resolved scale on the skeleton. Joints the skeleton lacks are
// recorded as skipped and logged as a warning on logger (slog.Default when nil);
// they never stop the remaining joints.
func Apply(skel Skeleton, scales types.JointScaleMap, logger *slog.Logger) *types.ApplyReport {
	if logger == nil {
		logger = slog.Default()
	}
	report := &types.ApplyReport{Joints: make([]types.JointApplication, 0, len(scales))}

	for _, name := range orderedNames(scales) {
		scale := scales[name]
		if !skel.HasJoint(name) {
			logger.Warn("joint not found in mesh, skipping", "joint", name)
			report.Joints = append(report.Joints, types.JointApplication{Joint: name, Scale: scale, Status: types.JointSkipped})
			continue
		}
		skel.SetScale(name, scale)
		report.Joints = append(report.Joints, types.JointApplication{Joint: name, Scale: scale, Status: types.JointApplied})
	}

	return report
}

// orderedNames lists known joints in binding order, then any extra names sorted.
func orderedNames(scales types.JointScaleMap) []string {
	names := make([]string, 0, len(scales))
	seen := make(map[string]struct{}, len(scales))
	for _, b := range bindings {
		if _, ok := scales[b.joint]; ok {
			names = append(names, b.joint)
			seen[b.joint] = struct{}{}
		}
	}

	var extra []string
	for name := range scales {
		if _, ok := seen[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	return append(names, extra...)
}

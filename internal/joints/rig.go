// Package joints maps archetype scale vectors onto named garment rig joints.
package joints

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/fit-estimator/internal/types"
	"gopkg.in/yaml.v3"
)

// Rig is an in-memory garment skeleton: the set of joints a mesh exposes and their current scale.
type Rig struct {
	scales map[string]types.JointScale
	order  []string
}

// rigFile is the on-disk joint list of a rigged mesh.
type rigFile struct {
	Name   string   `json:"name" yaml:"name"`
	Joints []string `json:"joints" yaml:"joints"`
}

// NewRig creates a rig exposing the named joints at identity scale. Duplicates are ignored.
func NewRig(names ...string) *Rig {
	r := &Rig{scales: make(map[string]types.JointScale, len(names))}
	for _, name := range names {
		if _, ok := r.scales[name]; ok {
			continue
		}
		r.scales[name] = types.IdentityScale
		r.order = append(r.order, name)
	}
	return r
}

// LoadRig reads a joint list from a JSON or YAML file.
func LoadRig(path string) (*Rig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read rig file %s", path),
			Cause:   err,
		}
	}

	var rf rigFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &rf)
	default:
		err = json.Unmarshal(content, &rf)
	}
	if err != nil {
		return nil, &LoadError{Message: "failed to parse rig file", Cause: err}
	}

	if len(rf.Joints) == 0 {
		return nil, &LoadError{Message: fmt.Sprintf("rig file %s lists no joints", path)}
	}

	return NewRig(rf.Joints...), nil
}

// HasJoint reports whether the rig exposes name.
func (r *Rig) HasJoint(name string) bool {
	_, ok := r.scales[name]
	return ok
}

// SetScale sets the scale of an existing joint. Unknown names are ignored.
func (r *Rig) SetScale(name string, scale types.JointScale) {
	if _, ok := r.scales[name]; ok {
		r.scales[name] = scale
	}
}

// Scale returns the current scale of name.
func (r *Rig) Scale(name string) (types.JointScale, bool) {
	s, ok := r.scales[name]
	return s, ok
}

// Joints returns the rig's joint names in declaration order.
func (r *Rig) Joints() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Package sizechart provides garment size charts: built-in registries and loadable chart files.
package sizechart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/fit-estimator/internal/schemas"
	"github.com/jonathan/fit-estimator/internal/types"
	"gopkg.in/yaml.v3"
)

// chartFile is the on-disk chart layout. Sizes keep file order.
type chartFile struct {
	Category string      `json:"category" yaml:"category"`
	Sizes    []sizeEntry `json:"sizes" yaml:"sizes"`
}

type sizeEntry struct {
	Label     string  `json:"label" yaml:"label"`
	Shoulder  float64 `json:"shoulder" yaml:"shoulder"`
	Chest     float64 `json:"chest" yaml:"chest"`
	Waist     float64 `json:"waist" yaml:"waist"`
	Length    float64 `json:"length" yaml:"length"`
	ArmLength float64 `json:"arm_length" yaml:"arm_length"`
}

// LoadChart reads a chart from a .json, .yaml or .yml file and validates it
// against the size_chart schema before building it.
func LoadChart(path string) (*Chart, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read chart file %s", path),
			Cause:   err,
		}
	}

	var raw interface{}
	var cf chartFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, &LoadError{Message: "failed to parse chart YAML", Cause: err}
		}
		if err := yaml.Unmarshal(content, &cf); err != nil {
			return nil, &LoadError{Message: "failed to parse chart YAML", Cause: err}
		}
	default:
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal chart JSON", Cause: err}
		}
		if err := json.Unmarshal(content, &cf); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal chart JSON", Cause: err}
		}
	}

	if err := schemas.ValidateDocument(schemas.SizeChart, raw); err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("chart file %s does not match schema", path), Cause: err}
	}

	entries := make([]Entry, 0, len(cf.Sizes))
	for _, s := range cf.Sizes {
		entries = append(entries, Entry{
			Label: s.Label,
			Measurement: types.GarmentMeasurement{
				Shoulder:  s.Shoulder,
				Chest:     s.Chest,
				Waist:     s.Waist,
				Length:    s.Length,
				ArmLength: s.ArmLength,
			},
		})
	}

	return New(cf.Category, entries...)
}

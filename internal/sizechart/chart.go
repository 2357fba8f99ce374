// Package sizechart provides garment size charts: built-in registries and loadable chart files.
package sizechart

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/fit-estimator/internal/types"
)

// Entry is one labelled size and its reference garment measurement.
type Entry struct {
	Label       string                   `json:"label" validate:"required"`
	Measurement types.GarmentMeasurement `json:"measurement"`
}

// Chart is an immutable, ordered set of sizes for one garment category.
// Iteration order is insertion order.
type Chart struct {
	category string
	entries  []Entry
}

var validate = validator.New()

// New builds a chart. It fails on an empty chart, duplicate labels, or non-positive measurements.
func New(category string, entries ...Entry) (*Chart, error) {
	if category == "" {
		return nil, &ChartError{Message: "category is required"}
	}
	if len(entries) == 0 {
		return nil, &ChartError{Message: fmt.Sprintf("chart %s has no sizes", category)}
	}

	c := &Chart{
		category: category,
		entries:  make([]Entry, 0, len(entries)),
	}
	seen := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, &ChartError{
				Message: fmt.Sprintf("chart %s: invalid size %q", category, e.Label),
				Cause:   err,
			}
		}
		if _, dup := seen[e.Label]; dup {
			return nil, &ChartError{Message: fmt.Sprintf("chart %s: duplicate size %q", category, e.Label)}
		}
		seen[e.Label] = struct{}{}
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// Category returns the chart's garment category.
func (c *Chart) Category() string {
	return c.category
}

// Len returns the number of sizes.
func (c *Chart) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the sizes in insertion order.
func (c *Chart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Labels returns the size labels in insertion order.
func (c *Chart) Labels() []string {
	labels := make([]string, len(c.entries))
	for i, e := range c.entries {
		labels[i] = e.Label
	}
	return labels
}

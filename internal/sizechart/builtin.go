// Package sizechart provides garment size charts: built-in registries and loadable chart files.
package sizechart

import (
	"fmt"

	"github.com/jonathan/fit-estimator/internal/types"
)

// Category identifies a built-in chart.
type Category uint8

const (
	MenShirt Category = iota
	WomenShirt

	categoryCount
)

var categoryNames = [categoryCount]string{
	MenShirt:   "men-shirt",
	WomenShirt: "women-shirt",
}

func (c Category) String() string {
	if c >= categoryCount {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// ParseCategory converts a key such as "men-shirt" into a Category.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, &UnknownCategoryError{Category: s}
}

// Categories returns every built-in category.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

func size(label string, shoulder, chest, waist, length, armLength float64) Entry {
	return Entry{
		Label: label,
		Measurement: types.GarmentMeasurement{
			Shoulder:  shoulder,
			Chest:     chest,
			Waist:     waist,
			Length:    length,
			ArmLength: armLength,
		},
	}
}

var builtins = [categoryCount]*Chart{
	MenShirt: mustNew(MenShirt.String(),
		size("XS", 42, 88, 78, 66, 58),
		size("S", 44, 92, 82, 68, 60),
		size("M", 46, 96, 86, 70, 62),
		size("L", 48, 100, 90, 72, 64),
		size("XL", 50, 104, 94, 74, 66),
		size("XXL", 52, 108, 98, 76, 68),
	),
	WomenShirt: mustNew(WomenShirt.String(),
		size("XS", 38, 82, 68, 62, 56),
		size("S", 40, 86, 72, 64, 58),
		size("M", 42, 90, 76, 66, 60),
		size("L", 44, 94, 80, 68, 62),
		size("XL", 46, 98, 84, 70, 64),
	),
}

func mustNew(category string, entries ...Entry) *Chart {
	c, err := New(category, entries...)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in chart %s: %v", category, err))
	}
	return c
}

// Builtin returns the built-in chart for c. Charts are shared and read-only.
func Builtin(c Category) (*Chart, error) {
	if c >= categoryCount {
		return nil, &UnknownCategoryError{Category: c.String()}
	}
	return builtins[c], nil
}

// BuiltinByName is Builtin keyed by category string.
func BuiltinByName(name string) (*Chart, error) {
	c, err := ParseCategory(name)
	if err != nil {
		return nil, err
	}
	return Builtin(c)
}

// Package archetypes provides the fixed table of body-shape archetypes and their scale vectors.
package archetypes

import (
	"fmt"

	"github.com/jonathan/fit-estimator/internal/types"
)

// Key identifies an archetype. The set is closed; Valid reports membership.
type Key uint8

const (
	InvertedTriangle Key = iota
	Triangle
	Rectangle
	Round
	Slim
	Hourglass

	keyCount
)

// Archetype is a named body shape with its girth scale vector.
type Archetype struct {
	Key         Key               `json:"key"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Scale       types.ScaleVector `json:"scale"`
}

var keyNames = [keyCount]string{
	InvertedTriangle: "inverted-triangle",
	Triangle:         "triangle",
	Rectangle:        "rectangle",
	Round:            "round",
	Slim:             "slim",
	Hourglass:        "hourglass",
}

var table = [keyCount]Archetype{
	InvertedTriangle: {
		Key:         InvertedTriangle,
		Name:        "Inverted triangle",
		Description: "Broad shoulders with a narrow waist",
		Scale:       types.ScaleVector{Shoulder: 1.2, Chest: 1.15, Waist: 0.9, Hip: 0.95, Arm: 1.1, Leg: 1.0},
	},
	Triangle: {
		Key:         Triangle,
		Name:        "Triangle",
		Description: "Developed lower body",
		Scale:       types.ScaleVector{Shoulder: 0.9, Chest: 0.95, Waist: 1.0, Hip: 1.2, Arm: 0.95, Leg: 1.15},
	},
	Rectangle: {
		Key:         Rectangle,
		Name:        "Rectangle",
		Description: "Evenly balanced proportions",
		Scale:       types.NeutralScale,
	},
	Round: {
		Key:         Round,
		Name:        "Round",
		Description: "Fuller belly and waist",
		Scale:       types.ScaleVector{Shoulder: 1.0, Chest: 1.15, Waist: 1.25, Hip: 1.15, Arm: 1.1, Leg: 1.05},
	},
	Slim: {
		Key:         Slim,
		Name:        "Slim",
		Description: "Narrow and long throughout",
		Scale:       types.ScaleVector{Shoulder: 0.85, Chest: 0.85, Waist: 0.8, Hip: 0.85, Arm: 0.8, Leg: 0.9},
	},
	Hourglass: {
		Key:         Hourglass,
		Name:        "Hourglass",
		Description: "Broad shoulders and hips with a defined waist",
		Scale:       types.ScaleVector{Shoulder: 1.1, Chest: 1.1, Waist: 0.8, Hip: 1.15, Arm: 0.95, Leg: 1.05},
	},
}

func init() {
	if err := checkTable(table); err != nil {
		panic(err)
	}
}

// checkTable rejects a table whose keys are out of place or whose vectors fail ScaleVector.Validate.
func checkTable(t [keyCount]Archetype) error {
	for i, a := range t {
		if a.Key != Key(i) {
			return fmt.Errorf("archetype table: entry %d has key %s", i, a.Key)
		}
		if err := a.Scale.Validate(); err != nil {
			return fmt.Errorf("archetype table: %s: %w", a.Key, err)
		}
	}
	return nil
}

// Valid reports whether k is one of the table's keys.
func (k Key) Valid() bool {
	return k < keyCount
}

func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("archetype(%d)", uint8(k))
	}
	return keyNames[k]
}

// MarshalText encodes the key as its string identifier.
func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &UnknownArchetypeError{Key: k.String()}
	}
	return []byte(keyNames[k]), nil
}

// UnmarshalText decodes a string identifier such as "slim".
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Parse converts a string identifier into a Key.
func Parse(s string) (Key, error) {
	for i, name := range keyNames {
		if name == s {
			return Key(i), nil
		}
	}
	return 0, &UnknownArchetypeError{Key: s}
}

// Get returns the full archetype entry for k.
func Get(k Key) (Archetype, error) {
	if !k.Valid() {
		return Archetype{}, &UnknownArchetypeError{Key: k.String()}
	}
	return table[k], nil
}

// Lookup returns the scale vector for k.
func Lookup(k Key) (types.ScaleVector, error) {
	a, err := Get(k)
	if err != nil {
		return types.ScaleVector{}, err
	}
	return a.Scale, nil
}

// All returns every archetype in table order.
func All() []Archetype {
	out := make([]Archetype, keyCount)
	copy(out, table[:])
	return out
}

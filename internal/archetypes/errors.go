// Package archetypes provides the fixed table of body-shape archetypes and their scale vectors.
package archetypes

import "fmt"

// UnknownArchetypeError is returned when a key does not name an archetype in the table.
type UnknownArchetypeError struct {
	Key string
}

func (e *UnknownArchetypeError) Error() string {
	return fmt.Sprintf("unknown archetype %q", e.Key)
}

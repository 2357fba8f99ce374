// Package profile builds validated user profiles for a fitting session.
package profile

import "fmt"

// InvalidProfileError is returned when height or weight fall outside the supported range.
type InvalidProfileError struct {
	Field   string
	Value   float64
	Message string
	Cause   error
}

func (e *InvalidProfileError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid profile: %s=%v: %s", e.Field, e.Value, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("invalid profile: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid profile: %s", e.Message)
}

func (e *InvalidProfileError) Unwrap() error {
	return e.Cause
}

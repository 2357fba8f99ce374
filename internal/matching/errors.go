// Package matching selects the best-fitting size from a chart and classifies fit per region.
package matching

import "fmt"

// Error represents an error that occurs during size matching
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

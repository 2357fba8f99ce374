// Package sizechart provides garment size charts: built-in registries and loadable chart files.
package sizechart

import "fmt"

// UnknownCategoryError is returned when a category key names no built-in chart.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown size chart category %q", e.Category)
}

// ChartError represents an invalid chart definition
type ChartError struct {
	Message string
	Cause   error
}

func (e *ChartError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("chart error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("chart error: %s", e.Message)
}

func (e *ChartError) Unwrap() error {
	return e.Cause
}

// LoadError represents an error during file I/O or parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

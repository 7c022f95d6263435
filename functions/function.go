package functions

import (
	"github.com/speakeasy-api/lintfuncs/rulefunc"
)

// Function categories

const (
	// CategoryStyle represents functions that check formatting and naming conventions
	// Examples: description length, allowed characters
	CategoryStyle = "style"

	// CategoryResponses represents functions that check how operations declare responses
	// Examples: explicit status codes instead of a catch-all default
	CategoryResponses = "responses"

	// CategoryExamples represents functions that check example coverage
	// Examples: request bodies carrying an example payload
	CategoryExamples = "examples"
)

// Function is a rule function together with the metadata a host needs to configure and document it.
type Function interface {
	// ID returns the unique identifier of the function (e.g., "alnum-description")
	ID() string

	// Category returns the function category (e.g., "style", "responses", "examples")
	Category() string

	// Summary returns a short summary of what the function checks
	Summary() string

	// Description returns a human-readable description of what the function checks
	Description() string

	// Link returns an optional URL to documentation for this function
	Link() string

	// Given returns the selector a host would typically target with this function, as a JSONPath expression
	Given() string

	// Evaluate checks input and reports violations. It satisfies rulefunc.Func.
	Evaluate(input any, options any, ctx rulefunc.Context) []rulefunc.Diagnostic
}

// DocumentedFunction provides extended documentation for a function
type DocumentedFunction interface {
	Function

	// GoodExample returns YAML showing correct usage
	GoodExample() string

	// BadExample returns YAML showing incorrect usage
	BadExample() string

	// Rationale explains why this function exists
	Rationale() string
}

// ConfigurableFunction indicates a function accepts options
type ConfigurableFunction interface {
	Function

	// OptionsSchema returns JSON Schema for the function options
	OptionsSchema() map[string]any

	// OptionsDefaults returns default values for options
	OptionsDefaults() map[string]any
}

// noOptionsSchema accepts a null or empty options object.
func noOptionsSchema() map[string]any {
	return map[string]any{
		"type":          []any{"object", "null"},
		"maxProperties": 0,
	}
}

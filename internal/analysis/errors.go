package analysis

import (
	"fmt"
	"net/http"
	"strings"
)

// ExcerptLength bounds how much raw model output a ParseError keeps.
const ExcerptLength = 300

// ValidationError reports a request rejected before any external call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string   { return e.Message }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// ConfigurationError reports a missing or unusable credential.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConfigurationError) Unwrap() error   { return e.Err }
func (e *ConfigurationError) StatusCode() int { return http.StatusServiceUnavailable }

// GenerationError wraps a failed call to the generation service.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string   { return "generation failed: " + e.Err.Error() }
func (e *GenerationError) Unwrap() error   { return e.Err }
func (e *GenerationError) StatusCode() int { return http.StatusInternalServerError }

// ParseError reports model output that could not be turned into a FitAnalysis.
type ParseError struct {
	Excerpt string
	Err     error
}

func newParseError(raw string, err error) *ParseError {
	return &ParseError{Excerpt: excerpt(raw, ExcerptLength), Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model response as JSON: %v. Raw output: %s", e.Err, e.Excerpt)
}

func (e *ParseError) Unwrap() error   { return e.Err }
func (e *ParseError) StatusCode() int { return http.StatusInternalServerError }

// SchemaError lists the fields that failed strict validation.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "model response violates schema: " + strings.Join(e.Violations, "; ")
}

func (e *SchemaError) StatusCode() int { return http.StatusInternalServerError }

// excerpt returns at most n runes of s.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

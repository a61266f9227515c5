// Package script produces the four-part marketing script (Headline, Hook,
// Body, CTA) from analyzed reviews, either via an external LLM or a
// deterministic template fallback.
package script

import "fmt"

// GenerationError represents a failure of the external generation capability:
// API error, timeout, or a response that cannot be parsed into four sections.
// It is non-fatal; callers substitute the template fallback.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

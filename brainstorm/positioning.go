package brainstorm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned by [Positioning.Validate] when a required
// positioning field is empty. The wrapping error names the offending field.
var ErrMissingField = errors.New("missing required positioning field")

// Positioning holds the four required brand-positioning inputs shared by
// every prompt, plus optional extra context. Values are immutable for the
// duration of a run.
type Positioning struct {
	// CoreValue is the primary value or benefit the business offers.
	CoreValue string `json:"core_value"`

	// TargetAudience describes who the brand is trying to reach and serve.
	TargetAudience string `json:"target_audience"`

	// Persona is the character or image the brand projects.
	Persona string `json:"persona"`

	// Monetization explains how the business generates revenue.
	Monetization string `json:"monetization"`

	// BrandContext is optional markdown context (typically extracted from
	// the brand's website) appended to every prompt. May be empty.
	BrandContext string `json:"brand_context,omitempty"`
}

// Validate checks that all four required fields are non-empty after trimming
// whitespace. It must pass before any task runs.
func (p Positioning) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"core_value", p.CoreValue},
		{"target_audience", p.TargetAudience},
		{"persona", p.Persona},
		{"monetization", p.Monetization},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	return nil
}

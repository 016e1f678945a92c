package a11ykit

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ValidationError represents field validation errors.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// Error implements the error interface.
// Returns a human-readable error message summarizing validation failures.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}
	return fmt.Sprintf("validation error: %s", e.joinFirstMessages())
}

// NewValidationError creates a new validation error.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Add adds an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// Fields returns the names of all fields with errors, sorted.
func (e ValidationError) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Summary builds the text a form announcer speaks: the error count followed
// by the first message per field, in field order. Empty errors yield an
// empty string so the announcement pipeline rejects them instead of
// announcing nothing.
func (e ValidationError) Summary() string {
	if len(e) == 0 {
		return ""
	}

	noun := "errors"
	if len(e) == 1 {
		noun = "error"
	}
	return fmt.Sprintf("Form has %d %s: %s", len(e), noun, e.joinFirstMessages())
}

// joinFirstMessages joins "field: first message" pairs in sorted field order
// so output is deterministic.
func (e ValidationError) joinFirstMessages() string {
	var parts []string
	for _, field := range e.Fields() {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return strings.Join(parts, ", ")
}

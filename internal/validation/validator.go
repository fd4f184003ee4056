package validation

import (
	"strings"
	"unicode/utf8"
)

// Validator provides common validation utilities
type Validator struct {
	textMaxLength int
}

// DefaultTextMaxLength caps task text when no configured limit is supplied
const DefaultTextMaxLength = 1000

// NewValidator creates a new validator instance with the default text limit
func NewValidator() *Validator {
	return &Validator{
		textMaxLength: DefaultTextMaxLength,
	}
}

// NewValidatorWithLimit creates a new validator instance with a configured
// maximum task text length
func NewValidatorWithLimit(textMaxLength int) *Validator {
	if textMaxLength < 1 {
		textMaxLength = DefaultTextMaxLength
	}
	return &Validator{
		textMaxLength: textMaxLength,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTextLength checks if a string is within the configured length
// limit. Length is counted in runes so non-ASCII text is not penalized.
func (v *Validator) IsValidTextLength(s string) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= 1 && length <= v.textMaxLength
}

// TextMaxLength returns the configured maximum text length
func (v *Validator) TextMaxLength() int {
	return v.textMaxLength
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

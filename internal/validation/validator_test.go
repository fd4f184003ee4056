package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"plain text", "Buy milk", true},
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
		{"non-ASCII", "Купить молоко", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.IsNonEmptyString(tt.input))
		})
	}
}

func TestValidator_IsValidTextLength(t *testing.T) {
	v := NewValidatorWithLimit(10)

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"within limit", "short", true},
		{"exactly at limit", strings.Repeat("x", 10), true},
		{"over limit", strings.Repeat("x", 11), false},
		{"empty", "", false},
		{"runes counted not bytes", "молоко🥛юла", true}, // 10 runes, far more bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.IsValidTextLength(tt.input))
		})
	}
}

func TestNewValidatorWithLimit_InvalidLimitFallsBack(t *testing.T) {
	v := NewValidatorWithLimit(0)
	assert.Equal(t, DefaultTextMaxLength, v.TextMaxLength())
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	v := NewValidator()
	assert.Equal(t, "Buy milk", v.TrimAndValidateString("  Buy milk \n"))
}

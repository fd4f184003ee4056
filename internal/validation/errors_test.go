package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	ve := NewValidationError()
	assert.Equal(t, "validation error", ve.Error())

	ve.AddRequiredError("task_text")
	assert.Contains(t, ve.Error(), "task_text")
	assert.Contains(t, ve.Error(), "required")

	ve.AddInvalidValueError("category", "Shopping", "not in the configured category list")
	assert.Contains(t, ve.Error(), "multiple validation errors")
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddInvalidLengthError("task_text", "x", 1, 100)
	assert.True(t, ve.HasErrors())
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(errors.New("plain")))
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	assert.Equal(t, "Input validation failed", ve.GetUserFriendlyMessage())

	ve.AddRequiredError("task_text")
	assert.Equal(t, "task_text is required", ve.GetUserFriendlyMessage())

	ve.AddRequiredError("category")
	message := ve.GetUserFriendlyMessage()
	assert.Contains(t, message, "Multiple validation errors")
	assert.Contains(t, message, "- task_text is required")
	assert.Contains(t, message, "- category is required")
}

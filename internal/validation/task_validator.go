package validation

// TaskValidator provides validation for task creation
type TaskValidator struct {
	validator  *Validator
	categories map[string]bool
}

// NewTaskValidator creates a new task validator for the given category
// enumeration and text length limit
func NewTaskValidator(categories []string, textMaxLength int) *TaskValidator {
	categorySet := make(map[string]bool, len(categories))
	for _, category := range categories {
		categorySet[category] = true
	}
	return &TaskValidator{
		validator:  NewValidatorWithLimit(textMaxLength),
		categories: categorySet,
	}
}

// ValidateText validates task text for creation
func (tv *TaskValidator) ValidateText(text string) error {
	validationError := NewValidationError()

	trimmedText := tv.validator.TrimAndValidateString(text)

	if !tv.validator.IsNonEmptyString(trimmedText) {
		validationError.AddRequiredError("task_text")
		return validationError
	}

	if !tv.validator.IsValidTextLength(trimmedText) {
		validationError.AddInvalidLengthError("task_text", trimmedText, 1, tv.validator.TextMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateCategory checks category membership against the configured
// enumeration
func (tv *TaskValidator) ValidateCategory(category string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(category) {
		validationError.AddRequiredError("category")
		return validationError
	}

	if !tv.categories[category] {
		validationError.AddInvalidValueError("category", category, "not in the configured category list")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// IsKnownCategory reports whether the category is in the configured list
func (tv *TaskValidator) IsKnownCategory(category string) bool {
	return tv.categories[category]
}

// GetValidText trims the text and returns it if valid
func (tv *TaskValidator) GetValidText(text string) (string, error) {
	trimmed := tv.validator.TrimAndValidateString(text)
	if err := tv.ValidateText(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}

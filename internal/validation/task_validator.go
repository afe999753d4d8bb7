package validation

import (
	"todo-list/internal/config"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// MaxTextLength returns the longest accepted task text in characters
func (tv *TaskValidator) MaxTextLength() int {
	return tv.validator.TextMaxLength()
}

// ValidateText validates task text for creation. Blank text is reported as
// a required error; the text itself is never modified.
func (tv *TaskValidator) ValidateText(text string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(text) {
		validationError.AddRequiredError("text")
		return validationError
	}

	if !tv.validator.IsValidTextLength(text) {
		validationError.AddTooLongError("text", text, tv.validator.TextMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

package validation

import (
	"fmt"
	"strings"
)

// ValidationErrorType names the rule a field broke
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
)

// FieldError is one broken rule on one field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
}

// ValidationError collects the field errors of one check
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "validation error"
	case 1:
		return ve.Errors[0].Error()
	}
	parts := make([]string, len(ve.Errors))
	for i := range ve.Errors {
		parts[i] = ve.Errors[i].Error()
	}
	return "validation errors: " + strings.Join(parts, "; ")
}

// NewValidationError returns an empty error ready to collect field errors
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// HasErrors returns true if any field error was recorded
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// HasErrorType reports whether any field error is of the given type
func (ve *ValidationError) HasErrorType(errorType ValidationErrorType) bool {
	for _, fe := range ve.Errors {
		if fe.Type == errorType {
			return true
		}
	}
	return false
}

func (ve *ValidationError) add(field string, errorType ValidationErrorType, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Type: errorType, Message: message, Value: value})
}

// AddRequiredError records a blank field
func (ve *ValidationError) AddRequiredError(field string) {
	ve.add(field, ErrorTypeRequired, field+" is empty", nil)
}

// AddTooLongError records a field longer than max characters
func (ve *ValidationError) AddTooLongError(field string, value interface{}, max int) {
	ve.add(field, ErrorTypeInvalidLength, fmt.Sprintf("%s must be at most %d characters long", field, max), value)
}

// AddInvalidValueError records a value outside the accepted range
func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	ve.add(field, ErrorTypeInvalidValue, fmt.Sprintf("%s %s", field, reason), value)
}

// GetUserFriendlyMessage returns the messages of all field errors, one per line
func (ve *ValidationError) GetUserFriendlyMessage() string {
	if len(ve.Errors) == 0 {
		return "Input validation failed"
	}
	messages := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		messages[i] = fe.Message
	}
	return strings.Join(messages, "\n")
}

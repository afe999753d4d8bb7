package cli

import (
	"fmt"

	"todo-list/internal/config"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/validation"
)

// ErrorHandler turns command errors into messages for the terminal
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages prefixed with the operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	return fmt.Errorf("failed to %s: %s", operation, eh.message(err))
}

// HandleSimple provides user-friendly error messages without operation context.
// Errors worth investigating are logged with their cause.
func (eh *ErrorHandler) HandleSimple(err error) error {
	if appErr, ok := errors.AsAppError(err); ok && errors.ShouldLogError(err) {
		logging.Default().Error("command failed", append(appErr.LogFields(), "err", err)...)
	}
	return fmt.Errorf("%s", eh.message(err))
}

func (eh *ErrorHandler) message(err error) string {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return validationErr.GetUserFriendlyMessage()
	}
	if configErr, ok := err.(*config.ConfigError); ok {
		return "invalid configuration: " + configErr.Error()
	}
	if errors.IsAppError(err) {
		return errors.GetUserMessage(err)
	}
	return err.Error()
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsDatabaseError checks if an error is a database error
func (eh *ErrorHandler) IsDatabaseError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDatabase) ||
		errors.IsErrorType(err, errors.ErrorTypeStorageUnavailable)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

package errors

import (
	"errors"
	"fmt"
)

func newError(t ErrorType, message string, cause error, keyvals ...interface{}) *AppError {
	e := &AppError{
		Type:    t,
		Message: message,
		Code:    kinds[t].code,
		Cause:   cause,
		Fields:  map[string]interface{}{},
	}
	for i := 0; i+1 < len(keyvals); i += 2 {
		e.Fields[fmt.Sprint(keyvals[i])] = keyvals[i+1]
	}
	return e
}

// NewValidationError reports input that was rejected by validation
func NewValidationError(message string, cause error) *AppError {
	return newError(ErrorTypeValidation, message, cause)
}

// NewNotFoundError reports a missing resource such as a task id
func NewNotFoundError(resource string, identifier string) *AppError {
	return newError(ErrorTypeNotFound, fmt.Sprintf("%s not found: %s", resource, identifier), nil,
		"resource", resource, "identifier", identifier)
}

// NewDatabaseError is returned by every store operation that fails after
// the store was opened.
func NewDatabaseError(operation string, cause error) *AppError {
	return newError(ErrorTypeDatabase, "database operation failed: "+operation, cause,
		"operation", operation)
}

// NewStorageUnavailableError is returned when the store cannot be opened
// or initialized.
func NewStorageUnavailableError(location string, cause error) *AppError {
	return newError(ErrorTypeStorageUnavailable, "unable to open task database: "+location, cause,
		"location", location)
}

func NewEmptyInputError(field string) *AppError {
	return newError(ErrorTypeEmptyInput, field+" is empty", nil, "field", field)
}

func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newError(ErrorTypeInvalidInput, fmt.Sprintf("invalid input for %s: %s", field, reason), nil,
		"field", field, "value", value, "reason", reason)
}

// WrapError attaches a type and message to err. The code is the type name.
func WrapError(err error, t ErrorType, message string) *AppError {
	e := newError(t, message, err)
	e.Code = t.String()
	return e
}

// AsAppError finds the first AppError in err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// IsErrorType reports whether err's chain holds an AppError of type t
func IsErrorType(err error, t ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.IsType(t)
}

// userFault reports whether err was caused by user input. Errors of
// unknown origin are never treated as user faults.
func userFault(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return false
	}
	k, ok := appErr.Type.info()
	return ok && k.userFault
}

// IsFatal reports whether the application cannot continue after err.
// Storage errors have no retry or fallback path.
func IsFatal(err error) bool {
	return err != nil && !userFault(err)
}

// GetUserMessage returns the text to show the user for err
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	k, known := appErr.Type.info()
	switch {
	case !known:
		return "An unexpected error occurred."
	case k.userMessage != "":
		return k.userMessage
	default:
		return appErr.Message
	}
}

func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError is false for errors the user caused and can fix.
func ShouldLogError(err error) bool {
	return !userFault(err)
}

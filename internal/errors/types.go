package errors

import (
	"strings"
)

// ErrorType classifies an AppError
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeDatabase
	ErrorTypeInvalidInput
	ErrorTypeStorageUnavailable
	ErrorTypeEmptyInput
)

// kind holds everything that is fixed per ErrorType.
type kind struct {
	name string
	code string
	// userMessage replaces the error text shown to the user. Empty means
	// the error message itself is shown.
	userMessage string
	// userFault errors are caused by input and are neither fatal nor logged.
	userFault bool
}

var kinds = map[ErrorType]kind{
	ErrorTypeValidation:         {name: "validation", code: "VALIDATION_FAILED", userFault: true},
	ErrorTypeNotFound:           {name: "not_found", code: "NOT_FOUND", userFault: true},
	ErrorTypeInvalidInput:       {name: "invalid_input", code: "INVALID_INPUT", userFault: true},
	ErrorTypeEmptyInput:         {name: "empty_input", code: "EMPTY_INPUT", userMessage: "Empty input", userFault: true},
	ErrorTypeDatabase:           {name: "database", code: "DATABASE_ERROR", userMessage: "A database error occurred. The task list may be out of date."},
	ErrorTypeStorageUnavailable: {name: "storage_unavailable", code: "STORAGE_UNAVAILABLE", userMessage: "Error opening the task database."},
}

func (et ErrorType) info() (kind, bool) {
	k, ok := kinds[et]
	return k, ok
}

func (et ErrorType) String() string {
	if k, ok := et.info(); ok {
		return k.name
	}
	return "unknown"
}

// AppError is the error returned across package boundaries. Fields carries
// structured detail such as the task id or the database location.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Fields  map[string]interface{}
}

func (e *AppError) Error() string {
	var b strings.Builder
	b.WriteString(e.Type.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code, so sentinel
// values can be compared with errors.Is.
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == other.Type && e.Code == other.Code
}

// IsType reports whether e is of type t
func (e *AppError) IsType(t ErrorType) bool {
	return e.Type == t
}

// WithContext records a detail on the error and returns it for chaining.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = map[string]interface{}{}
	}
	e.Fields[key] = value
	return e
}

// GetContext returns a detail recorded with WithContext.
func (e *AppError) GetContext(key string) (interface{}, bool) {
	v, ok := e.Fields[key]
	return v, ok
}

// LogFields returns the code and recorded details as alternating
// key/value pairs, the form accepted by the logger.
func (e *AppError) LogFields() []interface{} {
	kv := make([]interface{}, 0, 2*len(e.Fields)+2)
	kv = append(kv, "code", e.Code)
	for k, v := range e.Fields {
		kv = append(kv, k, v)
	}
	return kv
}

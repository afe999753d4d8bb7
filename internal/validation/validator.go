package validation

import (
	"strings"
	"unicode/utf8"

	"todo-list/internal/config"
)

// DefaultTextMaxLength is the longest task text accepted when no
// configuration is supplied. It matches the width of the text column.
const DefaultTextMaxLength = config.MaxTextLength

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TextLength counts characters, not bytes
func (v *Validator) TextLength(s string) int {
	return utf8.RuneCountInString(s)
}

// IsValidTextLength checks the untrimmed text against the configured maximum
func (v *Validator) IsValidTextLength(s string) bool {
	return v.TextLength(s) <= v.TextMaxLength()
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TextMaxLength returns the configured maximum text length. Values outside
// 1..DefaultTextMaxLength fall back to the default.
func (v *Validator) TextMaxLength() int {
	if v.config != nil && v.config.Validation.TextMaxLength > 0 &&
		v.config.Validation.TextMaxLength <= DefaultTextMaxLength {
		return v.config.Validation.TextMaxLength
	}
	return DefaultTextMaxLength
}

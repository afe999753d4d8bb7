package validation

import (
	"strings"
	"testing"

	"todo-list/internal/config"
)

func TestTaskValidator_ValidateText(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid text", "Buy milk", false, ""},
		{"Empty text", "", true, ErrorTypeRequired},
		{"Whitespace only", "   ", true, ErrorTypeRequired},
		{"Tabs and newlines", "\t\n", true, ErrorTypeRequired},
		{"Too long", strings.Repeat("a", 51), true, ErrorTypeInvalidLength},
		{"Exactly the limit", strings.Repeat("a", 50), false, ""},
		{"Padding counts toward the limit", " " + strings.Repeat("a", 50), true, ErrorTypeInvalidLength},
		{"Any characters allowed", "Task@#$% ✓", false, ""},
		{"Multibyte at the limit", strings.Repeat("é", 50), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateText(tt.input)

			if !tt.expectError {
				if err != nil {
					t.Errorf("ValidateText(%q) expected no error but got %v", tt.input, err)
				}
				return
			}

			if err == nil {
				t.Fatalf("ValidateText(%q) expected error but got nil", tt.input)
			}

			validationErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("ValidateText(%q) expected ValidationError but got %T", tt.input, err)
			}

			if len(validationErr.Errors) != 1 {
				t.Fatalf("ValidateText(%q) expected exactly one error, got %d", tt.input, len(validationErr.Errors))
			}

			if validationErr.Errors[0].Type != tt.errorType {
				t.Errorf("ValidateText(%q) expected error type %v but got %v", tt.input, tt.errorType, validationErr.Errors[0].Type)
			}
		})
	}
}

func TestTaskValidator_WithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TextMaxLength = 5
	validator := NewTaskValidatorWithConfig(cfg)

	if validator.MaxTextLength() != 5 {
		t.Errorf("MaxTextLength() = %d, expected 5", validator.MaxTextLength())
	}
	if err := validator.ValidateText("12345"); err != nil {
		t.Errorf("text at the configured limit should pass, got %v", err)
	}
	if err := validator.ValidateText("123456"); err == nil {
		t.Errorf("text over the configured limit should fail")
	}
}

func TestTaskValidator_ValidateTaskID(t *testing.T) {
	validator := NewTaskValidator()

	if err := validator.ValidateTaskID(1); err != nil {
		t.Errorf("ValidateTaskID(1) expected no error, got %v", err)
	}

	for _, id := range []int64{0, -5} {
		err := validator.ValidateTaskID(id)
		if err == nil {
			t.Errorf("ValidateTaskID(%d) expected error", id)
			continue
		}
		if !err.(*ValidationError).HasErrorType(ErrorTypeInvalidValue) {
			t.Errorf("ValidateTaskID(%d) expected invalid value error", id)
		}
	}
}

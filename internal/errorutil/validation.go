package errorutil

import (
	"fmt"
	"strings"
)

// ValidationError collects every field that failed a validation pass
type ValidationError struct {
	Context string       `json:"context" yaml:"context"`
	Errors  []FieldError `json:"errors" yaml:"errors"`
}

// FieldError is a single failed field. Message is shown to end users as is.
type FieldError struct {
	Field   string `json:"field" yaml:"field"`
	Value   any    `json:"value" yaml:"value"`
	Message string `json:"message" yaml:"message"`
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s validation failed", e.Context)
	}

	messages := make([]string, 0, len(e.Errors))
	for _, fieldErr := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", fieldErr.Field, fieldErr.Message))
	}
	return fmt.Sprintf("%s validation failed: %s", e.Context, strings.Join(messages, "; "))
}

// ValidationBuilder accumulates field failures; Build returns them as one error
type ValidationBuilder struct {
	context string
	errors  []FieldError
}

func NewValidationBuilder(context string) *ValidationBuilder {
	return &ValidationBuilder{context: context}
}

// Add records a failure unconditionally
func (vb *ValidationBuilder) Add(field string, value any, message string) *ValidationBuilder {
	vb.errors = append(vb.errors, FieldError{Field: field, Value: value, Message: message})
	return vb
}

// RequiredString fails when value is blank
func (vb *ValidationBuilder) RequiredString(field, value string) *ValidationBuilder {
	if IsEmptyString(value) {
		vb.Add(field, value, "is required")
	}
	return vb
}

// RequiredInt fails when value is not positive
func (vb *ValidationBuilder) RequiredInt(field string, value int) *ValidationBuilder {
	if value <= 0 {
		vb.Add(field, value, "must be greater than 0")
	}
	return vb
}

// OneOf fails when a non-empty value is not among options
func (vb *ValidationBuilder) OneOf(field, value string, options []string) *ValidationBuilder {
	if value == "" {
		return vb
	}
	for _, option := range options {
		if value == option {
			return vb
		}
	}
	return vb.Add(field, value, fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")))
}

// Custom fails with message when predicate rejects value
func (vb *ValidationBuilder) Custom(field string, value any, predicate func(any) bool, message string) *ValidationBuilder {
	if !predicate(value) {
		vb.Add(field, value, message)
	}
	return vb
}

// Check records err's message against field when err is non-nil
func (vb *ValidationBuilder) Check(field string, value any, err error) *ValidationBuilder {
	if err != nil {
		vb.Add(field, value, err.Error())
	}
	return vb
}

// Build returns a *ValidationError when any failure was recorded, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if len(vb.errors) == 0 {
		return nil
	}
	return &ValidationError{Context: vb.context, Errors: vb.errors}
}

func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.errors) > 0
}

func (vb *ValidationBuilder) ErrorCount() int {
	return len(vb.errors)
}

// IsEmptyString reports whether s is empty after trimming whitespace
func IsEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateConfig runs validations against a builder labelled for configName
func ValidateConfig(configName string, validations func(*ValidationBuilder) *ValidationBuilder) error {
	return validations(NewValidationBuilder(configName + " configuration")).Build()
}

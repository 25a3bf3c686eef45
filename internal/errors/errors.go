// Package errors provides structured error types for the rectarea CLI.
//
// Every failure the tool reports to an operator is a *CalcError carrying a
// category, a stable machine-readable code, and optional context values.
// Callers classify failures with the IsValidation/IsOverflow/IsInput
// predicates instead of matching message text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Category groups errors by the stage of the calculation that produced them.
type Category string

const (
	// CategoryValidation covers precondition violations: input that was
	// parsed successfully but is outside the domain (negative dimensions).
	CategoryValidation Category = "validation"

	// CategoryOverflow covers postcondition violations: the true product
	// does not fit the fixed-width result type.
	CategoryOverflow Category = "overflow"

	// CategoryInput covers raw input that never became an integer at all
	// (parse failures, unexpected EOF on the prompt).
	CategoryInput Category = "input"

	// CategoryConfig covers invalid configuration values.
	CategoryConfig Category = "config"
)

// CalcError is a structured error with category, code, and context.
type CalcError struct {
	Category Category
	Code     string
	Message  string
	Cause    error
	Context  map[string]interface{}

	// Recoverable reports whether the operator can fix the failure by
	// re-running with different input.
	Recoverable bool
}

// Error implements the error interface.
func (e *CalcError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *CalcError) Unwrap() error {
	return e.Cause
}

// Is matches errors by category and code.
func (e *CalcError) Is(target error) bool {
	var t *CalcError
	if errors.As(target, &t) {
		return e.Category == t.Category && e.Code == t.Code
	}

	return false
}

// WithContext attaches a context value to the error.
func (e *CalcError) WithContext(key string, value interface{}) *CalcError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithCause attaches an underlying cause.
func (e *CalcError) WithCause(cause error) *CalcError {
	e.Cause = cause

	return e
}

// NewValidationError creates a validation error. Validation errors are
// recoverable: the operator can re-run with corrected input.
func NewValidationError(code, message string) *CalcError {
	return &CalcError{
		Category:    CategoryValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewOverflowError creates an overflow error. Overflow is not recoverable
// for the given inputs: the result type cannot hold the product.
func NewOverflowError(code, message string) *CalcError {
	return &CalcError{
		Category:    CategoryOverflow,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewInputError creates an input error for raw input that failed to parse.
func NewInputError(code, message string, cause error) *CalcError {
	return &CalcError{
		Category:    CategoryInput,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *CalcError {
	return &CalcError{
		Category:    CategoryConfig,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// IsValidation reports whether err is a validation-category CalcError.
func IsValidation(err error) bool {
	return hasCategory(err, CategoryValidation)
}

// IsOverflow reports whether err is an overflow-category CalcError.
func IsOverflow(err error) bool {
	return hasCategory(err, CategoryOverflow)
}

// IsInput reports whether err is an input-category CalcError.
func IsInput(err error) bool {
	return hasCategory(err, CategoryInput)
}

func hasCategory(err error, cat Category) bool {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Category == cat
	}

	return false
}

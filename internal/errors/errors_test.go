package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcErrorFormatting(t *testing.T) {
	err := NewValidationError("invalid_dimension", "both dimensions must be nonnegative integers")
	assert.Equal(t, "[invalid_dimension] both dimensions must be nonnegative integers", err.Error())
}

func TestCalcErrorFormattingWithCause(t *testing.T) {
	cause := fmt.Errorf("parse failure")
	err := NewInputError("not_an_integer", "width must be a 32-bit integer", cause)

	assert.Contains(t, err.Error(), "[not_an_integer]")
	assert.Contains(t, err.Error(), "parse failure")
	assert.ErrorIs(t, err, cause)
}

func TestCalcErrorIs(t *testing.T) {
	a := NewOverflowError("area_overflow", "computed area resulted in an integer overflow")
	b := NewOverflowError("area_overflow", "different message, same condition")
	c := NewOverflowError("other_code", "computed area resulted in an integer overflow")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
	assert.False(t, stderrors.Is(a, NewValidationError("area_overflow", "x")))
}

func TestCalcErrorContext(t *testing.T) {
	err := NewValidationError("invalid_dimension", "rejected").
		WithContext("width", int32(-1)).
		WithContext("height", int32(5))

	require.NotNil(t, err.Context)
	assert.Equal(t, int32(-1), err.Context["width"])
	assert.Equal(t, int32(5), err.Context["height"])
}

func TestCategoryPredicates(t *testing.T) {
	validation := NewValidationError("invalid_dimension", "rejected")
	overflow := NewOverflowError("area_overflow", "overflowed")
	input := NewInputError("not_an_integer", "unparseable", nil)

	assert.True(t, IsValidation(validation))
	assert.False(t, IsValidation(overflow))

	assert.True(t, IsOverflow(overflow))
	assert.False(t, IsOverflow(input))

	assert.True(t, IsInput(input))
	assert.False(t, IsInput(validation))

	assert.False(t, IsValidation(fmt.Errorf("plain error")))
	assert.False(t, IsValidation(nil))
}

func TestPredicatesUnwrapWrappedErrors(t *testing.T) {
	inner := NewOverflowError("area_overflow", "overflowed")
	wrapped := fmt.Errorf("running calculation: %w", inner)

	assert.True(t, IsOverflow(wrapped))
}

func TestRecoverability(t *testing.T) {
	assert.True(t, NewValidationError("c", "m").Recoverable)
	assert.True(t, NewInputError("c", "m", nil).Recoverable)
	assert.True(t, NewConfigError("c", "m").Recoverable)
	assert.False(t, NewOverflowError("c", "m").Recoverable)
}

// Package geometry implements the overflow-aware rectangle area core.
//
// Dimensions and areas share one fixed-width signed representation (int32).
// Validation and computation are separate operations composed by Rectangle:
// validation runs first and rejects negative dimensions before any
// arithmetic; computation multiplies two already-validated dimensions and
// classifies the result as a valid area or an overflow.
package geometry

import (
	"math"

	"github.com/rectlabs/rectarea/internal/errors"
)

// Dimension is a rectangle side length. A Dimension is valid input only
// when it is nonnegative; negative values are never meaningful domain
// values and are rejected before computation.
type Dimension int32

// Area is the product of two Dimensions. On success it is always
// nonnegative; when the true product exceeds MaxArea the stored int32
// value is wraparound garbage and is never returned to callers.
type Area int32

// MaxArea is the largest representable Area.
const MaxArea Area = math.MaxInt32

// OverflowCheck selects the overflow detection strategy.
type OverflowCheck int

const (
	// CheckRange computes the product in int64 and compares it against
	// MaxArea before narrowing. It detects every overflow.
	CheckRange OverflowCheck = iota

	// CheckSign reproduces the legacy rule: multiply in int32 and treat a
	// negative result as overflow. Because both inputs are nonnegative, a
	// negative product can only mean the sign bit flipped on wraparound.
	// The rule is unsound: a wrapped product that lands back in
	// nonnegative range (65536*65536 wraps to 0) is silently reported as
	// a valid area. Offered only for compatibility with the original
	// behavior.
	CheckSign
)

// String returns the configuration name of the check mode.
func (c OverflowCheck) String() string {
	switch c {
	case CheckRange:
		return "range"
	case CheckSign:
		return "sign"
	default:
		return "unknown"
	}
}

// ParseOverflowCheck maps a configuration value to an OverflowCheck.
func ParseOverflowCheck(s string) (OverflowCheck, error) {
	switch s {
	case "range", "":
		return CheckRange, nil
	case "sign":
		return CheckSign, nil
	default:
		return CheckRange, errors.NewConfigError("unknown_overflow_check",
			"unknown overflow check mode: "+s+" (supported: range, sign)")
	}
}

// ErrInvalidDimension is the sentinel for negative-dimension rejection;
// use errors.Is against it or errors.IsValidation to classify.
var ErrInvalidDimension = errors.NewValidationError("invalid_dimension",
	"both dimensions must be nonnegative integers")

// ErrOverflow is the sentinel for an area that exceeds MaxArea.
var ErrOverflow = errors.NewOverflowError("area_overflow",
	"computed area resulted in an integer overflow")

// ValidateDimensions accepts a width/height pair iff both are nonnegative.
// It performs no clamping or correction and attempts no arithmetic.
func ValidateDimensions(width, height Dimension) error {
	if width < 0 || height < 0 {
		return errors.NewValidationError("invalid_dimension",
			"both dimensions must be nonnegative integers").
			WithContext("width", int32(width)).
			WithContext("height", int32(height))
	}

	return nil
}

// CalculateArea computes width*height for two dimensions already known to
// be nonnegative (established by ValidateDimensions; nonnegativity is not
// re-checked here). The returned error is non-nil iff the product
// overflowed under the selected check mode; on error the Area value is
// zero and must not be used.
func CalculateArea(width, height Dimension, check OverflowCheck) (Area, error) {
	switch check {
	case CheckSign:
		// Native int32 multiplication with wraparound. Sign inspection
		// misses overflows that wrap back into nonnegative range.
		area := Area(int32(width) * int32(height))
		if area < 0 {
			return 0, overflowError(width, height)
		}
		return area, nil
	default:
		wide := int64(width) * int64(height)
		if wide > int64(MaxArea) {
			return 0, overflowError(width, height)
		}
		return Area(wide), nil
	}
}

// Rectangle validates the pair and, on acceptance, computes its area.
// Exactly one of the two failure conditions or a valid area results; the
// operation is a pure function of its inputs.
func Rectangle(width, height Dimension, check OverflowCheck) (Area, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return 0, err
	}

	return CalculateArea(width, height, check)
}

func overflowError(width, height Dimension) error {
	return errors.NewOverflowError("area_overflow",
		"computed area resulted in an integer overflow").
		WithContext("width", int32(width)).
		WithContext("height", int32(height))
}

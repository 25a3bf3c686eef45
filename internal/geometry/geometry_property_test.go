//go:build property

package geometry

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/rectlabs/rectarea/internal/errors"
)

// TestAreaProperties validates the area calculation contract over
// generated dimension pairs.
func TestAreaProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Property: every representable product of nonnegative dimensions is
	// returned exactly. 46340^2 is the largest square below MaxArea, so
	// pairs drawn from [0, 46340] never overflow.
	properties.Property("representable products succeed with exact value", prop.ForAll(
		func(w int32, h int32) bool {
			area, err := Rectangle(Dimension(w), Dimension(h), CheckRange)
			if err != nil {
				return false
			}

			return int64(area) == int64(w)*int64(h)
		},
		gen.Int32Range(0, 46340),
		gen.Int32Range(0, 46340),
	))

	// Property: a negative dimension is rejected regardless of the other
	// dimension, and rejection happens at validation.
	properties.Property("negative dimensions are rejected before arithmetic", prop.ForAll(
		func(w int32, h int32) bool {
			_, err := Rectangle(Dimension(w), Dimension(h), CheckRange)

			return errors.IsValidation(err) && !errors.IsOverflow(err)
		},
		gen.Int32Range(-2147483648, -1),
		gen.Int32Range(-2147483648, 2147483647),
	))

	// Property: any product exceeding MaxArea is reported as overflow
	// under the range check. Both factors at least 46342 guarantees the
	// true product exceeds MaxArea.
	properties.Property("range check detects every overflow", prop.ForAll(
		func(w int32, h int32) bool {
			_, err := Rectangle(Dimension(w), Dimension(h), CheckRange)

			return errors.IsOverflow(err)
		},
		gen.Int32Range(46342, 2147483647),
		gen.Int32Range(46342, 2147483647),
	))

	// Property: the sign check never rejects a product the range check
	// accepts. The converse does not hold (sign has false negatives).
	properties.Property("sign check is no stricter than range check", prop.ForAll(
		func(w int32, h int32) bool {
			_, rangeErr := Rectangle(Dimension(w), Dimension(h), CheckRange)
			_, signErr := Rectangle(Dimension(w), Dimension(h), CheckSign)

			if signErr != nil && rangeErr == nil {
				return false
			}

			return true
		},
		gen.Int32Range(0, 2147483647),
		gen.Int32Range(0, 2147483647),
	))

	// Property: the calculation is a pure function of its inputs.
	properties.Property("identical inputs yield identical results", prop.ForAll(
		func(w int32, h int32) bool {
			a1, err1 := Rectangle(Dimension(w), Dimension(h), CheckRange)
			a2, err2 := Rectangle(Dimension(w), Dimension(h), CheckRange)

			if (err1 == nil) != (err2 == nil) {
				return false
			}

			return a1 == a2
		},
		gen.Int32Range(-1000, 2147483647),
		gen.Int32Range(-1000, 2147483647),
	))

	properties.TestingRun(t)
}

package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rectlabs/rectarea/internal/errors"
)

func TestInt32ReadsSequentialValues(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("3\n4\n"), &out)

	width, err := p.Int32("width")
	require.NoError(t, err)
	assert.Equal(t, int32(3), width)

	height, err := p.Int32("height")
	require.NoError(t, err)
	assert.Equal(t, int32(4), height)

	assert.Equal(t, "Enter width: Enter height: ", out.String())
}

func TestInt32TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  42  \n"), &out)

	v, err := p.Int32("width")
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)
}

func TestInt32NegativeValuesParse(t *testing.T) {
	// Parsing accepts negatives; rejecting them is the validator's job.
	var out bytes.Buffer
	p := New(strings.NewReader("-7\n"), &out)

	v, err := p.Int32("height")
	require.NoError(t, err)
	assert.Equal(t, int32(-7), v)
}

func TestInt32LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("12"), &out)

	v, err := p.Int32("width")
	require.NoError(t, err)
	assert.Equal(t, int32(12), v)
}

func TestInt32RejectsNonInteger(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"word", "twelve\n"},
		{"float", "3.5\n"},
		{"empty line", "\n"},
		{"exceeds int32", "2147483648\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)

			_, err := p.Int32("width")
			require.Error(t, err)
			assert.True(t, errors.IsInput(err))
		})
	}
}

func TestInt32ExhaustedInput(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)

	_, err := p.Int32("width")
	require.Error(t, err)
	assert.True(t, errors.IsInput(err))
}

func TestInt32BoundaryValues(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("2147483647\n-2147483648\n"), &out)

	max, err := p.Int32("width")
	require.NoError(t, err)
	assert.Equal(t, int32(2147483647), max)

	min, err := p.Int32("height")
	require.NoError(t, err)
	assert.Equal(t, int32(-2147483648), min)
}

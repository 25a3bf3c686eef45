// Package prompt reads typed values interactively from an operator.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rectlabs/rectarea/internal/errors"
)

// Prompter writes prompts to an output stream and reads one line of input
// per question from an input stream. Streams are injected so tests can
// drive it with buffers instead of a terminal.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// New creates a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Int32 prompts with "Enter <label>: " and parses the next input line as a
// base-10 32-bit signed integer. A line that does not parse, or an input
// stream that ends before a line arrives, yields an input error.
func (p *Prompter) Int32(label string) (int32, error) {
	fmt.Fprintf(p.out, "Enter %s: ", label)

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return 0, errors.NewInputError("input_unavailable",
			fmt.Sprintf("no input available for %s", label), err)
	}

	line = strings.TrimSpace(line)

	value, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		return 0, errors.NewInputError("not_an_integer",
			fmt.Sprintf("%s must be a 32-bit integer, got %q", label, line), err)
	}

	return int32(value), nil
}

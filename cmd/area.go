package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rectlabs/rectarea/internal/config"
	"github.com/rectlabs/rectarea/internal/errors"
	"github.com/rectlabs/rectarea/internal/geometry"
	"github.com/rectlabs/rectarea/internal/logging"
	"github.com/rectlabs/rectarea/internal/prompt"
)

// areaResult is the JSON shape of a successful calculation.
type areaResult struct {
	Width  int32 `json:"width"`
	Height int32 `json:"height"`
	Area   int32 `json:"area"`
}

// addAreaFlags registers the calculation flags and their viper bindings on
// a command that runs runArea.
func addAreaFlags(cmd *cobra.Command) {
	cmd.Flags().Int32P("width", "W", 0, "rectangle width (prompted for when omitted)")
	cmd.Flags().Int32P("height", "H", 0, "rectangle height (prompted for when omitted)")
	cmd.Flags().StringP("format", "f", "text", "result format (text, json)")
	cmd.Flags().String("overflow-check", "range", "overflow detection mode (range, sign)")
	cmd.Flags().Bool("no-color", false, "disable colored output")
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("calc.overflow_check", cmd.Flags().Lookup("overflow-check"))
}

// Operator-facing messages for the two failure conditions.
const (
	msgInvalidDimension = "Both dimensions must be nonnegative integers. Please try again."
	msgOverflow         = "ERROR: Computed area resulted in an integer overflow."
)

func runArea(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}

	logger := logging.NewLogger(&logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	}).WithComponent("area")

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || !cfg.Output.Color {
		color.NoColor = true
	}

	check, err := geometry.ParseOverflowCheck(cfg.Calc.OverflowCheck)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}

	width, height, err := gatherDimensions(cmd, args)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}

	ctx := cmd.Context()
	logger.Debug(ctx, "calculating area",
		"width", width, "height", height, "overflow_check", check.String())

	area, err := geometry.Rectangle(geometry.Dimension(width), geometry.Dimension(height), check)
	if err != nil {
		reportFailure(cmd.ErrOrStderr(), err)
		return err
	}

	return reportArea(cmd.OutOrStdout(), cfg.Output.Format, width, height, int32(area))
}

// gatherDimensions resolves width and height from positional arguments,
// flags, or interactive prompts, in that order of preference. A dimension
// given both positionally and as a flag resolves to the positional value.
func gatherDimensions(cmd *cobra.Command, args []string) (int32, int32, error) {
	var width, height int32
	var haveWidth, haveHeight bool

	if len(args) > 0 {
		v, err := parseDimensionArg("width", args[0])
		if err != nil {
			return 0, 0, err
		}
		width, haveWidth = v, true
	}
	if len(args) > 1 {
		v, err := parseDimensionArg("height", args[1])
		if err != nil {
			return 0, 0, err
		}
		height, haveHeight = v, true
	}

	if !haveWidth && cmd.Flags().Changed("width") {
		width, _ = cmd.Flags().GetInt32("width")
		haveWidth = true
	}
	if !haveHeight && cmd.Flags().Changed("height") {
		height, _ = cmd.Flags().GetInt32("height")
		haveHeight = true
	}

	if haveWidth && haveHeight {
		return width, height, nil
	}

	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	if !haveWidth {
		v, err := p.Int32("width")
		if err != nil {
			return 0, 0, err
		}
		width = v
	}
	if !haveHeight {
		v, err := p.Int32("height")
		if err != nil {
			return 0, 0, err
		}
		height = v
	}

	return width, height, nil
}

func parseDimensionArg(label, raw string) (int32, error) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, errors.NewInputError("not_an_integer",
			fmt.Sprintf("%s must be a 32-bit integer, got %q", label, raw), err)
	}

	return int32(v), nil
}

// reportFailure writes the operator-facing line for a rejected calculation.
func reportFailure(w io.Writer, err error) {
	red := color.New(color.FgRed)

	switch {
	case errors.IsValidation(err):
		red.Fprintln(w, msgInvalidDimension)
	case errors.IsOverflow(err):
		red.Fprintln(w, msgOverflow)
	default:
		red.Fprintln(w, err)
	}
}

// reportArea writes the operator-facing line for a successful calculation.
func reportArea(w io.Writer, format string, width, height, area int32) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		return enc.Encode(areaResult{Width: width, Height: height, Area: area})
	}

	fmt.Fprintf(w, "Area of a %d by %d rectangle is: %s\n",
		width, height, color.New(color.Bold).Sprintf("%d", area))

	return nil
}

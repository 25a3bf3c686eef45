// Package cmd provides the command-line interface for rectarea with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration with clear precedence:
//	1. Command-line flags (--overflow-check, --format, etc.) - highest priority
//	2. RECTAREA_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (RECTAREA_CALC_OVERFLOW_CHECK, etc.)
//	4. Configuration files (.rectarea.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command. Running it without a subcommand
// performs one area calculation, prompting for any dimension not supplied
// on the command line.
var rootCmd = &cobra.Command{
	Use:   "rectarea",
	Short: "Overflow-aware rectangle area calculator",
	Long: `Rectarea reads two nonnegative integer dimensions, computes the area of
the rectangle they describe in 32-bit signed arithmetic, and reports either
the area or a failure condition.

Failure conditions:
  • a negative dimension is rejected before any arithmetic
  • a product too large for a 32-bit signed integer is reported as overflow

Dimensions can be given as flags, as positional arguments, or entered at
interactive prompts:

  rectarea 3 4
  rectarea --width 3 --height 4
  rectarea                        # prompts "Enter width: ", "Enter height: "

Exit status is 0 on success and 1 for either failure condition.`,
	Args:          cobra.MaximumNArgs(2),
	RunE:          runArea,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .rectarea.yml, can also use RECTAREA_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	addAreaFlags(rootCmd)
}

// initConfig initializes the configuration system.
//
// Loading priority (highest to lowest):
//  1. --config flag: explicitly specified config file path
//  2. RECTAREA_CONFIG_FILE environment variable: custom config file path
//  3. Default: .rectarea.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("RECTAREA_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rectarea")
	}

	// Enable automatic environment variable binding with RECTAREA_ prefix
	// Examples: RECTAREA_CALC_OVERFLOW_CHECK, RECTAREA_OUTPUT_FORMAT
	viper.SetEnvPrefix("RECTAREA")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or unreadable config file is not fatal; defaults apply
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

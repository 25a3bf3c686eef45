// Package config provides configuration management for the rectarea CLI
// using Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// The configuration system supports a YAML file (.rectarea.yml), overrides
// via RECTAREA_-prefixed environment variables, and flag bindings. It
// manages overflow detection mode, output formatting, and log level.
package config

import (
	"github.com/spf13/viper"

	"github.com/rectlabs/rectarea/internal/errors"
)

type Config struct {
	Calc   CalcConfig   `yaml:"calc"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

type CalcConfig struct {
	// OverflowCheck selects how overflow is detected: "range" (widening
	// comparison, detects every overflow) or "sign" (legacy sign-bit
	// inspection with known false negatives).
	OverflowCheck string `yaml:"overflow_check" mapstructure:"overflow_check"`
}

type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
	Color  bool   `yaml:"color"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Load builds a Config from viper's merged sources and applies defaults
// for anything unset.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError("unmarshal_failed",
			"failed to read configuration").WithCause(err)
	}

	// Handle values set only via viper (flag/env bindings don't always
	// survive Unmarshal for nested keys)
	if viper.IsSet("calc.overflow_check") {
		config.Calc.OverflowCheck = viper.GetString("calc.overflow_check")
	}
	if viper.IsSet("output.format") {
		config.Output.Format = viper.GetString("output.format")
	}
	if viper.IsSet("output.color") {
		config.Output.Color = viper.GetBool("output.color")
	}
	if viper.IsSet("log.level") {
		config.Log.Level = viper.GetString("log.level")
	}
	if viper.IsSet("log.format") {
		config.Log.Format = viper.GetString("log.format")
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Calc.OverflowCheck == "" {
		config.Calc.OverflowCheck = "range"
	}
	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
	if !viper.IsSet("output.color") {
		config.Output.Color = true
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

// Validate rejects unknown enum values before any computation runs.
func (c *Config) Validate() error {
	switch c.Calc.OverflowCheck {
	case "range", "sign":
	default:
		return errors.NewConfigError("unknown_overflow_check",
			"calc.overflow_check must be \"range\" or \"sign\", got \""+c.Calc.OverflowCheck+"\"")
	}

	switch c.Output.Format {
	case "text", "json":
	default:
		return errors.NewConfigError("unknown_output_format",
			"output.format must be \"text\" or \"json\", got \""+c.Output.Format+"\"")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigError("unknown_log_level",
			"log.level must be one of debug, info, warn, error, got \""+c.Log.Level+"\"")
	}

	return nil
}

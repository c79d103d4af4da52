// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/invowk/benchsuite/internal/suite"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Params sets the input parameter of each workload.
		Params suite.Params `json:"params" mapstructure:"params"`
		// Output configures the report.
		Output OutputConfig `json:"output" mapstructure:"output"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Source is the config file the values were read from, or "" when
		// only defaults and environment overrides apply.
		Source string `json:"-" mapstructure:"-"`
	}

	// OutputConfig configures the report written to stdout.
	OutputConfig struct {
		// Format is "text" (default), "json" or "toml".
		Format suite.Format `json:"format" mapstructure:"format"`
		// MemStats samples allocation counters around each benchmark.
		MemStats bool `json:"mem_stats" mapstructure:"mem_stats"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme selects the style used to render error guidance.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging on stderr.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Params: suite.DefaultParams(),
		Output: OutputConfig{
			Format: suite.FormatText,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined schemes.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// GlamourStyle maps the scheme to a glamour standard style name. Auto
// follows the detected terminal background.
func (c ColorScheme) GlamourStyle(hasDarkBackground bool) string {
	switch {
	case c == ColorSchemeLight:
		return "light"
	case c == ColorSchemeDark, hasDarkBackground:
		return "dark"
	default:
		return "light"
	}
}

// IsValid returns whether the Config has valid fields. It delegates to
// Params.IsValid(), Output.Format.IsValid() and UI.ColorScheme.IsValid().
// Values arriving through environment overrides bypass the CUE schema, so
// this is the final gate.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Params.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Output.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msg := fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		msg += "\n  - " + fe.Error()
	}
	return msg
}

// Unwrap returns ErrInvalidConfig followed by the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

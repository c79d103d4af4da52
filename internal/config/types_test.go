// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"

	"github.com/invowk/benchsuite/internal/suite"
)

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme  ColorScheme
		want    bool
		wantErr bool
	}{
		{ColorSchemeAuto, true, false},
		{ColorSchemeDark, true, false},
		{ColorSchemeLight, true, false},
		{"", false, true},
		{"garbage", false, true},
		{"AUTO", false, true},
		{"Dark", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.scheme.IsValid()
			if isValid != tt.want {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.scheme, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("ColorScheme(%q).IsValid() returned no errors, want error", tt.scheme)
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("error should wrap ErrInvalidColorScheme, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("ColorScheme(%q).IsValid() returned unexpected errors: %v", tt.scheme, errs)
			}
		})
	}
}

func TestColorScheme_GlamourStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scheme ColorScheme
		dark   bool
		want   string
	}{
		{"auto on dark", ColorSchemeAuto, true, "dark"},
		{"auto on light", ColorSchemeAuto, false, "light"},
		{"dark forced", ColorSchemeDark, false, "dark"},
		{"light forced", ColorSchemeLight, true, "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.scheme.GlamourStyle(tt.dark); got != tt.want {
				t.Errorf("ColorScheme(%q).GlamourStyle(%v) = %q, want %q", tt.scheme, tt.dark, got, tt.want)
			}
		})
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		if valid, errs := DefaultConfig().IsValid(); !valid {
			t.Errorf("DefaultConfig().IsValid() = false, errors: %v", errs)
		}
	})

	t.Run("collects every field error", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Params.Sieve = -1
		cfg.Output.Format = "yaml"
		cfg.UI.ColorScheme = "sepia"

		valid, errs := cfg.IsValid()
		if valid {
			t.Fatal("expected invalid config")
		}
		if len(errs) != 1 {
			t.Fatalf("expected a single aggregated error, got %d", len(errs))
		}

		var ice *InvalidConfigError
		if !errors.As(errs[0], &ice) {
			t.Fatalf("expected InvalidConfigError, got %T", errs[0])
		}
		if len(ice.FieldErrors) != 3 {
			t.Errorf("expected 3 field errors, got %d: %v", len(ice.FieldErrors), ice.FieldErrors)
		}

		if !errors.Is(errs[0], ErrInvalidConfig) {
			t.Error("error should wrap ErrInvalidConfig")
		}
	})

	t.Run("format only", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Output.Format = "xml"

		_, errs := cfg.IsValid()
		var ice *InvalidConfigError
		if !errors.As(errs[0], &ice) {
			t.Fatalf("expected InvalidConfigError, got %T", errs[0])
		}
		if !errors.Is(ice.FieldErrors[0], suite.ErrInvalidFormat) {
			t.Errorf("field error should wrap suite.ErrInvalidFormat, got: %v", ice.FieldErrors[0])
		}
	})
}

func TestInvalidConfigError_Error(t *testing.T) {
	t.Parallel()

	err := &InvalidConfigError{FieldErrors: []error{
		&InvalidColorSchemeError{Value: "sepia"},
	}}

	want := "invalid config: 1 field error(s)\n  - invalid color scheme \"sepia\" (valid: auto, dark, light)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

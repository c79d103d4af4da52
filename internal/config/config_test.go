// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/invowk/benchsuite/internal/issue"
	"github.com/invowk/benchsuite/internal/suite"
	"github.com/invowk/benchsuite/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Params != suite.DefaultParams() {
		t.Errorf("expected default params %+v, got %+v", suite.DefaultParams(), cfg.Params)
	}

	if cfg.Output.Format != suite.FormatText {
		t.Errorf("expected default format to be text, got %s", cfg.Output.Format)
	}

	if cfg.Output.MemStats {
		t.Error("expected mem stats to be disabled by default")
	}

	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}

	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG lookup only applies on linux")
	}

	restore := testutil.MustSetenv(t, "XDG_CONFIG_HOME", "/tmp/test-xdg-config")
	defer restore()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}

	expected := filepath.Join("/tmp/test-xdg-config", AppName)
	if dir != expected {
		t.Errorf("ConfigDir() = %s, want %s", dir, expected)
	}
}

func TestConfigDir_FallsBackToHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG lookup only applies on linux")
	}

	home := t.TempDir()
	restoreXDG := testutil.MustUnsetenv(t, "XDG_CONFIG_HOME")
	defer restoreXDG()
	restoreHome := testutil.SetHomeDir(t, home)
	defer restoreHome()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}

	expected := filepath.Join(home, ".config", AppName)
	if dir != expected {
		t.Errorf("ConfigDir() = %s, want %s", dir, expected)
	}
}

func TestLoad_ReturnsDefaultsWhenNoConfigFile(t *testing.T) {
	cfgDir := t.TempDir()

	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: cfgDir})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Source != "" {
		t.Errorf("expected no source file, got %q", cfg.Source)
	}

	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults %+v, got %+v", *DefaultConfig(), *cfg)
	}
}

func TestLoad_MergesFileOverDefaults(t *testing.T) {
	cfgDir := t.TempDir()
	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	testutil.MustWriteFile(t, cfgPath, `
params: {
	fibonacci: 30
	binary_trees: 10
}
output: format: "json"
ui: verbose: true
`)

	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: cfgDir})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Source != cfgPath {
		t.Errorf("expected source %q, got %q", cfgPath, cfg.Source)
	}

	want := suite.DefaultParams()
	want.Fibonacci = 30
	want.BinaryTrees = 10
	if cfg.Params != want {
		t.Errorf("expected params %+v, got %+v", want, cfg.Params)
	}

	if cfg.Output.Format != suite.FormatJSON {
		t.Errorf("expected format json, got %s", cfg.Output.Format)
	}

	if !cfg.UI.Verbose {
		t.Error("expected verbose to be true")
	}

	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("omitted color scheme should keep default, got %s", cfg.UI.ColorScheme)
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	restoreSieve := testutil.MustSetenv(t, "BENCHSUITE_PARAMS_SIEVE", "1000")
	defer restoreSieve()
	restoreFormat := testutil.MustSetenv(t, "BENCHSUITE_OUTPUT_FORMAT", "toml")
	defer restoreFormat()

	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Params.Sieve != 1000 {
		t.Errorf("expected sieve 1000 from environment, got %d", cfg.Params.Sieve)
	}

	if cfg.Output.Format != suite.FormatTOML {
		t.Errorf("expected format toml from environment, got %s", cfg.Output.Format)
	}
}

func TestLoad_EnvironmentOverrideOutOfRange(t *testing.T) {
	restore := testutil.MustSetenv(t, "BENCHSUITE_PARAMS_FIBONACCI", "200")
	defer restore()

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err == nil {
		t.Fatal("expected error for out-of-range fibonacci parameter")
	}

	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected error to wrap ErrInvalidConfig, got: %v", err)
	}

	if !errors.Is(err, suite.ErrInvalidParam) {
		t.Errorf("expected error to wrap suite.ErrInvalidParam, got: %v", err)
	}
}

func TestLoad_EnvironmentOverrideNotANumber(t *testing.T) {
	restore := testutil.MustSetenv(t, "BENCHSUITE_PARAMS_SIEVE", "lots")
	defer restore()

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err == nil {
		t.Fatal("expected error for non-numeric sieve parameter")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected ActionableError, got %T: %v", err, err)
	}
	if ae.Operation != "decode configuration" {
		t.Errorf("Operation = %q, want decode configuration", ae.Operation)
	}
}

func TestLoad_ActionableErrorFormat(t *testing.T) {
	cfgDir := t.TempDir()
	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	testutil.MustWriteFile(t, cfgPath, `params: fibonacci: "forty-two"`)

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: cfgDir})
	if err == nil {
		t.Fatal("expected error for invalid config")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected ActionableError, got %T", err)
	}

	if !ae.HasSuggestions() {
		t.Error("expected suggestions on config load error")
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "load configuration") {
		t.Errorf("error should contain operation, got: %s", errStr)
	}
	if !strings.Contains(errStr, cfgPath) {
		t.Errorf("error should contain resource path, got: %s", errStr)
	}
}

func TestLoad_SchemaRejectsUnknownField(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.cue")
	testutil.MustWriteFile(t, cfgPath, `params: fibbonacci: 10`)

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: cfgPath})
	if err == nil {
		t.Fatal("expected closed schema to reject misspelled field")
	}
}

func TestLoad_SchemaRejectsOutOfRange(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.cue")
	testutil.MustWriteFile(t, cfgPath, `params: binary_trees: 64`)

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: cfgPath})
	if err == nil {
		t.Fatal("expected schema to reject binary_trees above 30")
	}
}

func TestLoad_CustomPath_NotFound_ReturnsError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.cue")

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: missing})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}

	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error should name the missing file, got: %s", err)
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()

	canceled, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := NewProvider().Load(canceled, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Load() error = %v, want context.Canceled", err)
	}

	// cancellation wins over a missing explicit file
	missing := filepath.Join(t.TempDir(), "absent.cue")
	if _, err := NewProvider().Load(canceled, LoadOptions{ConfigFilePath: missing}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Load() error = %v, want context.Canceled", err)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "nested", ConfigFileName+"."+ConfigFileExt)

	created, err := CreateDefaultConfig(cfgPath)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() returned error: %v", err)
	}
	if !created {
		t.Fatal("expected config file to be created")
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("failed to read created config: %v", err)
	}
	if !strings.Contains(string(data), "fibonacci:    42") {
		t.Errorf("generated config should contain default fibonacci parameter, got:\n%s", data)
	}

	created, err = CreateDefaultConfig(cfgPath)
	if err != nil {
		t.Fatalf("second CreateDefaultConfig() returned error: %v", err)
	}
	if created {
		t.Error("existing config file must not be overwritten")
	}
}

func TestGenerateCUE_RoundTripsThroughSchema(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Params.Matrix = 64
	cfg.Output.Format = suite.FormatTOML
	cfg.UI.ColorScheme = ColorSchemeLight

	cfgPath := filepath.Join(t.TempDir(), "generated.cue")
	testutil.MustWriteFile(t, cfgPath, GenerateCUE(cfg))

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: cfgPath})
	if err != nil {
		t.Fatalf("generated config failed to load: %v", err)
	}

	cfg.Source = cfgPath
	if *loaded != *cfg {
		t.Errorf("loaded config %+v, want %+v", *loaded, *cfg)
	}
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	cfgDir := t.TempDir()
	expected := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)

	path, exists, err := ResolvePath(LoadOptions{ConfigDirPath: cfgDir})
	if err != nil {
		t.Fatalf("ResolvePath() returned error: %v", err)
	}
	if path != expected {
		t.Errorf("ResolvePath() = %s, want %s", path, expected)
	}
	if exists {
		t.Error("expected config file to be reported missing")
	}

	testutil.MustWriteFile(t, expected, "")
	if _, exists, _ = ResolvePath(LoadOptions{ConfigDirPath: cfgDir}); !exists {
		t.Error("expected config file to be reported present")
	}
}

func TestConstants(t *testing.T) {
	t.Parallel()

	if AppName != "benchsuite" {
		t.Errorf("AppName = %s, want benchsuite", AppName)
	}
	if ConfigFileName != "config" {
		t.Errorf("ConfigFileName = %s, want config", ConfigFileName)
	}
	if ConfigFileExt != "cue" {
		t.Errorf("ConfigFileExt = %s, want cue", ConfigFileExt)
	}
}

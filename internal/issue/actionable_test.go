// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "plan benchmarks"},
			expected: "failed to plan benchmarks",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "load configuration", Resource: "config.cue"},
			expected: "failed to load configuration: config.cue",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "config.cue",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load configuration: config.cue: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := NewErrorContext().
		WithOperation("validate parameters").
		Wrap(fmt.Errorf("wrapped: %w", sentinel)).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the sentinel through ActionableError")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should find *ActionableError")
	}
	if ae.Operation != "validate parameters" {
		t.Errorf("Operation = %q", ae.Operation)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := &ActionableError{
		Operation:   "plan benchmarks",
		Resource:    "fibbonaci",
		Suggestions: []string{"Run 'benchsuite list'", "Check spelling"},
		Cause:       fmt.Errorf("outer: %w", errors.New("inner")),
	}

	short := err.Format(false)
	if !strings.Contains(short, "\n  • Run 'benchsuite list'") {
		t.Errorf("Format(false) missing suggestion bullet: %q", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Error("Format(false) should not include the error chain")
	}

	long := err.Format(true)
	if !strings.Contains(long, "1. outer: inner") || !strings.Contains(long, "2. inner") {
		t.Errorf("Format(true) missing chain entries: %q", long)
	}
	if !err.HasSuggestions() {
		t.Error("HasSuggestions() = false, want true")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().WithResource("x").Wrap(errors.New("boom"))
	if ctx.Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := ctx.BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}

	cause := errors.New("disk full")
	got := WrapWithOperation(cause, "write report")
	if got.Error() != "failed to write report: disk full" {
		t.Errorf("Error() = %q", got.Error())
	}
}

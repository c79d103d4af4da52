// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/invowk/benchsuite/internal/issue"
	"github.com/invowk/benchsuite/internal/suite"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
)

// issueError tags an error with the catalog entry that explains it.
type issueError struct {
	id  issue.Id
	err error
}

func (e *issueError) Error() string { return e.err.Error() }

func (e *issueError) Unwrap() error { return e.err }

// issueFor picks the catalog entry for err. Explicit tags win over the
// sentinel errors of the suite package. Zero means no guidance applies.
func issueFor(err error) issue.Id {
	var tagged *issueError
	switch {
	case errors.Is(err, suite.ErrInvalidParam):
		return issue.InvalidParameterId
	case errors.Is(err, suite.ErrUnknownKind):
		return issue.UnknownBenchmarkId
	case errors.Is(err, suite.ErrInvalidFormat):
		return issue.InvalidOutputFormatId
	case errors.As(err, &tagged):
		return tagged.id
	default:
		return 0
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// handleError is the fang error handler. It prints the error, then the
// Markdown guidance from the issue catalog when one applies.
func (a *App) handleError(w io.Writer, _ fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, WarningStyle.Render("Interrupted: ")+err.Error())
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose))

	id := issueFor(err)
	if id == 0 {
		return
	}
	rendered, renderErr := issue.Get(id).Render(a.colorScheme.GlamourStyle(lipgloss.HasDarkBackground()))
	if renderErr != nil {
		return
	}
	fmt.Fprint(w, rendered)
}

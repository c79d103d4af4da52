// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

const (
	// FormatText is the plain console format.
	FormatText Format = "text"
	// FormatJSON emits the whole report as one JSON document.
	FormatJSON Format = "json"
	// FormatTOML emits the whole report as a TOML document.
	FormatTOML Format = "toml"

	// Banner is printed before the first benchmark starts.
	Banner = "Starting benchmarks..."
	// Trailer is printed after the last benchmark.
	Trailer = "Done!"
)

// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid output format")

type (
	// Format selects a report encoding.
	Format string

	// InvalidFormatError is returned when a Format value is not recognized.
	// It wraps ErrInvalidFormat for errors.Is() compatibility.
	InvalidFormatError struct {
		Value Format
	}

	// textSink streams the console format line by line.
	textSink struct {
		w io.Writer
	}

	// documentSink buffers nothing itself and encodes the finished report.
	documentSink struct {
		w      io.Writer
		encode func(io.Writer, *Report) error
	}
)

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// IsValid returns whether the Format is one of the defined encodings.
func (f Format) IsValid() (bool, []error) {
	switch f {
	case FormatText, FormatJSON, FormatTOML:
		return true, nil
	default:
		return false, []error{&InvalidFormatError{Value: f}}
	}
}

// NewSink returns a Sink writing the given format to w.
func NewSink(f Format, w io.Writer) (Sink, error) {
	switch f {
	case FormatText:
		return &textSink{w: w}, nil
	case FormatJSON:
		return &documentSink{w: w, encode: encodeJSON}, nil
	case FormatTOML:
		return &documentSink{w: w, encode: encodeTOML}, nil
	default:
		return nil, &InvalidFormatError{Value: f}
	}
}

// FormatLine renders one result in the console format,
// "<name>: <elapsed>ms (result: <value>)".
func FormatLine(res Result) string {
	return fmt.Sprintf("%s: %dms (result: %s)", res.Name, res.ElapsedMS, res.Value)
}

func (s *textSink) Begin(*Report) error {
	_, err := fmt.Fprintf(s.w, "%s\n\n", Banner)
	return err
}

func (s *textSink) Result(_ *Report, res Result) error {
	_, err := fmt.Fprintln(s.w, FormatLine(res))
	return err
}

func (s *textSink) End(*Report) error {
	_, err := fmt.Fprintf(s.w, "\n%s\n", Trailer)
	return err
}

func (s *documentSink) Begin(*Report) error          { return nil }
func (s *documentSink) Result(*Report, Result) error { return nil }
func (s *documentSink) End(r *Report) error          { return s.encode(s.w, r) }

func encodeJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func encodeTOML(w io.Writer, r *Report) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(r)
}

// Error implements the error interface for InvalidFormatError.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, toml)", string(e.Value))
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

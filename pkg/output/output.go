// Package output handles formatting and displaying CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Format represents the output format type.
type Format int

const (
	FormatHuman Format = iota
	FormatJSON
	FormatRaw
)

// Printer handles output formatting.
type Printer struct {
	writer  io.Writer
	errOut  io.Writer
	format  Format
	quiet   bool
	success *color.Color
	failure *color.Color
	label   *color.Color
}

// New creates a new output printer.
func New(format Format, quiet, noANSI bool) *Printer {
	p := &Printer{
		writer:  os.Stdout,
		errOut:  os.Stderr,
		format:  format,
		quiet:   quiet,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
		label:   color.New(color.FgCyan),
	}
	if noANSI {
		p.success.DisableColor()
		p.failure.DisableColor()
		p.label.DisableColor()
	}
	return p
}

// jsonError is the envelope emitted for errors in JSON mode.
type jsonError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Success prints a success response. In JSON mode the value is emitted
// as indented JSON; in raw mode as-is.
func (p *Printer) Success(result any) error {
	switch p.format {
	case FormatJSON:
		return p.printJSON(result)
	case FormatRaw:
		fmt.Fprintf(p.writer, "%v\n", result)
		return nil
	default:
		if !p.quiet {
			fmt.Fprintf(p.writer, "%v\n", result)
		}
		return nil
	}
}

// RawJSON prints a provider response body verbatim, re-indented.
func (p *Printer) RawJSON(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var buf any
	if err := json.Unmarshal(raw, &buf); err != nil {
		fmt.Fprintf(p.writer, "%s\n", raw)
		return nil
	}
	return p.printJSON(buf)
}

// Error prints an error response.
func (p *Printer) Error(err error) error {
	switch p.format {
	case FormatJSON:
		return p.printJSON(jsonError{Status: "error", Message: err.Error()})
	default:
		p.failure.Fprintf(p.errOut, "error: %v\n", err)
		return nil
	}
}

// APIError prints a provider-reported failure.
func (p *Printer) APIError(message string) error {
	switch p.format {
	case FormatJSON:
		return p.printJSON(jsonError{Status: "error", Message: message})
	default:
		p.failure.Fprintf(p.errOut, "error: %s\n", message)
		return nil
	}
}

// Successf prints a green status line in human mode.
func (p *Printer) Successf(format string, args ...any) {
	if p.quiet || p.format != FormatHuman {
		return
	}
	p.success.Fprintf(p.writer, format, args...)
}

// Field prints a labeled value in human mode.
func (p *Printer) Field(name string, value any) {
	if p.quiet || p.format != FormatHuman {
		return
	}
	p.label.Fprintf(p.writer, "%s: ", name)
	fmt.Fprintf(p.writer, "%v\n", value)
}

// Printf prints formatted data.
func (p *Printer) Printf(format string, args ...any) {
	if p.quiet && p.format != FormatJSON {
		return
	}
	fmt.Fprintf(p.writer, format, args...)
}

// Println prints a line of arbitrary data.
func (p *Printer) Println(args ...any) {
	if p.quiet && p.format != FormatJSON {
		return
	}
	fmt.Fprintln(p.writer, args...)
}

// Table prints data in table format (only in human mode).
func (p *Printer) Table(headers []string, rows [][]string) error {
	if p.format != FormatHuman {
		return nil
	}

	if len(headers) == 0 || len(rows) == 0 {
		return nil
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Print header
	for i, h := range headers {
		p.label.Fprintf(p.writer, "%-*s  ", widths[i], h)
	}
	fmt.Fprintln(p.writer)

	// Print separator
	for i := range headers {
		for j := 0; j < widths[i]; j++ {
			fmt.Fprint(p.writer, "-")
		}
		fmt.Fprint(p.writer, "  ")
	}
	fmt.Fprintln(p.writer)

	// Print rows
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(p.writer, "%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(p.writer)
	}

	return nil
}

// printJSON marshals and prints JSON output.
func (p *Printer) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	fmt.Fprintf(p.writer, "%s\n", data)
	return nil
}

// IsJSON returns true if the output format is JSON.
func (p *Printer) IsJSON() bool {
	return p.format == FormatJSON
}

// IsRaw returns true if the output format is raw.
func (p *Printer) IsRaw() bool {
	return p.format == FormatRaw
}

// IsQuiet returns true if quiet mode is enabled.
func (p *Printer) IsQuiet() bool {
	return p.quiet
}

// SetWriter redirects output, used by tests.
func (p *Printer) SetWriter(w io.Writer) {
	p.writer = w
	p.errOut = w
}

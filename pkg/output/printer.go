package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Printer writes results to one stream in one format
type Printer struct {
	w        io.Writer
	format   Format
	renderer *lipgloss.Renderer
}

// NewPrinter creates a printer. FormatAuto must be resolved by the caller;
// it is treated as FormatText here.
func NewPrinter(w io.Writer, format Format) *Printer {
	r := lipgloss.NewRenderer(w)
	if format != FormatTerminal {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, format: format, renderer: r}
}

// Format returns the printer's format
func (p *Printer) Format() Format {
	return p.format
}

// Machine reports whether output is meant for programs
func (p *Printer) Machine() bool {
	return p.format == FormatJSON || p.format == FormatYAML
}

// Style renders text with a named style from styles.yaml
func (p *Printer) Style(name, text string) string {
	return defaultStyles.build(p.renderer, name).Render(text)
}

// Println writes one line
func (p *Printer) Println(text string) {
	_, _ = fmt.Fprintln(p.w, text)
}

// Success writes a success line
func (p *Printer) Success(format string, args ...interface{}) {
	p.Println(p.Style("Success", "✓") + " " + fmt.Sprintf(format, args...))
}

// Warning writes a warning line
func (p *Printer) Warning(format string, args ...interface{}) {
	p.Println(p.Style("Warning", "!") + " " + fmt.Sprintf(format, args...))
}

// Error writes err as a single line
func (p *Printer) Error(err error) {
	p.Println(p.Style("Error", "Error:") + " " + err.Error())
}

// Table draws rows under headers
func (p *Printer) Table(headers []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	if p.format == FormatTerminal {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleLight)
	}

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = p.Style("Heading", h)
	}
	t.AppendHeader(header)
	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		t.AppendRow(r)
	}
	t.Render()
}

// Data writes v as JSON or YAML
func (p *Printer) Data(v interface{}) error {
	switch p.format {
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode json")
		}
		return nil
	}
}

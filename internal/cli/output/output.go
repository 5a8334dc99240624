// Package output renders command results as text tables, markdown, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
)

// Styles are the lipgloss styles used for human-readable output.
type Styles struct {
	Heading lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}

// Renderer writes command output in the configured mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	lg     *lipgloss.Renderer
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, IsTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}

	var lg *lipgloss.Renderer
	if isTTY {
		lg = lipgloss.NewRenderer(out)
	} else {
		lg = lipgloss.NewRenderer(out, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		lg:     lg,
		styles: &Styles{
			Heading: lg.NewStyle().Bold(true).Underline(true),
			Success: lg.NewStyle().Foreground(lipgloss.Color("2")),
			Warning: lg.NewStyle().Foreground(lipgloss.Color("3")),
			Muted:   lg.NewStyle().Faint(true),
		},
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Mode returns the effective mode, resolving auto to text on a terminal
// and markdown otherwise.
func (r *Renderer) Mode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// IsTTY reports whether output goes to a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Writer returns the main output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Styles returns the renderer's styles.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Lipgloss returns the lipgloss renderer bound to the output.
func (r *Renderer) Lipgloss() *lipgloss.Renderer {
	return r.lg
}

// IsStructured reports whether output is JSON or YAML.
func (r *Renderer) IsStructured() bool {
	m := r.Mode()
	return m == ModeJSON || m == ModeYAML
}

// Structured encodes v as JSON or YAML. It must only be called when
// IsStructured is true.
func (r *Renderer) Structured(v any) error {
	switch r.Mode() {
	case ModeJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case ModeYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("output mode %s is not structured", r.Mode())
	}
}

// Table renders rows under headers, as a box table in text mode and a
// markdown table otherwise.
func (r *Renderer) Table(title string, headers []string, rows [][]any) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(r.out, r.styles.Muted.Render(fmt.Sprintf("No %s", title)))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	t.AppendHeader(header)
	for _, row := range rows {
		t.AppendRow(table.Row(row))
	}

	if r.Mode() == ModeMarkdown {
		_, _ = fmt.Fprintf(r.out, "## %s\n\n", title)
		t.RenderMarkdown()
		return
	}

	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.Render()
}

// Success prints a confirmation line.
func (r *Renderer) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Warn prints a warning to the error stream.
func (r *Renderer) Warn(format string, args ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render("Warning: "+fmt.Sprintf(format, args...)))
}

package prompt

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Screen clears the display between menu steps.
type Screen interface {
	Clear()
}

// TermScreen clears a terminal with ANSI sequences.
type TermScreen struct {
	out *termenv.Output
}

// NewTermScreen returns a screen writing to w.
func NewTermScreen(w io.Writer) *TermScreen {
	return &TermScreen{out: termenv.NewOutput(w)}
}

// Clear wipes the screen and homes the cursor.
func (s *TermScreen) Clear() {
	s.out.ClearScreen()
}

// NopScreen leaves output alone; used when not attached to a terminal.
type NopScreen struct{}

// Clear does nothing.
func (NopScreen) Clear() {}

// Theme styles menu output.
type Theme struct {
	Title lipgloss.Style
	Index lipgloss.Style
	Error lipgloss.Style
}

// NewTheme builds menu styles for r.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title: r.NewStyle().Bold(true),
		Index: r.NewStyle().Foreground(lipgloss.Color("6")),
		Error: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// PlainTheme renders without any styling.
func PlainTheme() Theme {
	return Theme{Title: lipgloss.NewStyle(), Index: lipgloss.NewStyle(), Error: lipgloss.NewStyle()}
}

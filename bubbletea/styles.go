package bubbletea

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/notes"
)

// Styles holds the lipgloss styles for TUI chrome. Preview content styling
// comes from the renderer's spans; these cover everything around it.
type Styles struct {
	Title      lipgloss.Style
	Pane       lipgloss.Style
	ActivePane lipgloss.Style
	Selected   lipgloss.Style
	Dir        lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Prompt     lipgloss.Style
	LineCursor lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t notes.Theme) Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Foreground(ansiColor(t.HeadingRest)).Bold(true),
		Pane:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ansiColor(t.Marker)),
		ActivePane: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ansiColor(t.Border)),
		Selected:   lipgloss.NewStyle().Reverse(true),
		Dir:        lipgloss.NewStyle().Foreground(ansiColor(t.Link)).Bold(true),
		Status:     lipgloss.NewStyle().Foreground(ansiColor(t.Marker)).Faint(true),
		Error:      lipgloss.NewStyle().Foreground(ansiColor(1)),
		Prompt:     lipgloss.NewStyle().Foreground(ansiColor(t.ListMarker)),
		LineCursor: lipgloss.NewStyle().Reverse(true),
	}
}

// RenderLine converts one styled preview line to an ANSI string.
func (s Styles) RenderLine(l notes.Line) string {
	var b strings.Builder
	for _, span := range l {
		b.WriteString(spanStyle(span.Style).Render(span.Text))
	}
	return b.String()
}

func spanStyle(st notes.Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if st.Foreground >= 0 {
		ls = ls.Foreground(ansiColor(st.Foreground))
	}
	if st.Background >= 0 {
		ls = ls.Background(ansiColor(st.Background))
	}
	if st.Bold {
		ls = ls.Bold(true)
	}
	if st.Italic {
		ls = ls.Italic(true)
	}
	if st.Underline {
		ls = ls.Underline(true)
	}
	return ls
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

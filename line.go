package notes

import "strings"

// Style describes how a run of text is drawn. Foreground and Background are
// ANSI color indices (0-15); -1 means the terminal default. The user's
// terminal theme determines the actual RGB values.
type Style struct {
	Foreground int
	Background int
	Bold       bool
	Italic     bool
	Underline  bool
}

// PlainStyle returns a Style with no color and no modifiers.
func PlainStyle() Style {
	return Style{Foreground: -1, Background: -1}
}

// Span is a run of text with a single style.
type Span struct {
	Text  string
	Style Style
}

// Line is one terminal row: an ordered sequence of styled spans. Lines are
// produced once per render call and never mutated afterwards.
type Line []Span

// String returns the line's text with styling discarded.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// SourceLines splits raw source text on newlines. It backs the line-copy
// feature and deliberately bypasses the parse/render pipeline: indices match
// the file's lines, not the rendered output.
func SourceLines(source string) []string {
	if source == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(source, "\n"), "\n")
}

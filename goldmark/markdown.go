// Package goldmark parses markdown text into the flat element sequence
// consumed by the renderer, using goldmark for tokenization.
package goldmark

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/fwojciec/notes"
)

// Parse converts markdown source into an ordered sequence of elements.
// Malformed markdown degrades to Paragraph/Text elements rather than
// failing; the error return exists so hosts can fall back to verbatim
// per-line display if parsing ever does fail.
func Parse(source string) ([]notes.Element, error) {
	if source == "" {
		return nil, nil
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough),
	)
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	p := &docParser{source: src}
	if err := ast.Walk(doc, p.walk); err != nil {
		return nil, fmt.Errorf("walk document: %v: %w", err, notes.ErrParse)
	}
	p.flushResidual()

	return p.elements, nil
}

package goldmark

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/fwojciec/notes"
)

// docParser accumulates elements while walking the document tree. The walk's
// enter/exit callbacks drive a set of mutually-exclusive current-block flags
// plus one shared text buffer, so each block kind decides where accumulated
// text ends up when its end event arrives.
type docParser struct {
	source   []byte
	elements []notes.Element
	buf      bytes.Buffer

	headingLevel int // 0 = not in a heading
	inParagraph  bool
	inBlockquote bool

	// Emphasis delimiters are written back into the buffer literally; the
	// renderer's word-wrap pass re-derives bold/italic styling from them.
	// The nesting flags record parser state but nothing reads them.
	inBold   bool
	inItalic bool

	linkMark int // buffer length at link start

	inList  bool
	ordered bool
	items   []string

	inTable bool
	headers []string
	rows    [][]string
	row     []string
	aligns  []notes.Alignment
}

func (p *docParser) emit(e notes.Element) {
	p.elements = append(p.elements, e)
}

func (p *docParser) text() string {
	return strings.TrimSpace(p.buf.String())
}

// flushParagraph closes an open paragraph before a new block begins.
func (p *docParser) flushParagraph() {
	if !p.inParagraph {
		return
	}
	p.emit(notes.Paragraph{Text: p.text()})
	p.buf.Reset()
	p.inParagraph = false
}

// flushResidual handles text left over once the input is exhausted. Text
// accumulated inside an unterminated list item is discarded, matching the
// parser's list-end-only emission rule.
func (p *docParser) flushResidual() {
	t := p.text()
	if t == "" {
		return
	}
	switch {
	case p.inParagraph:
		p.emit(notes.Paragraph{Text: t})
	case !p.inList:
		p.emit(notes.Text{Text: t})
	}
	p.buf.Reset()
}

func (p *docParser) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Heading:
		if entering {
			p.flushParagraph()
			p.headingLevel = n.Level
			return ast.WalkContinue, nil
		}
		p.emit(notes.Heading{Level: p.headingLevel, Text: p.text()})
		p.buf.Reset()
		p.headingLevel = 0

	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			if !p.inList && !p.inBlockquote && !p.inTable {
				p.inParagraph = true
			}
			return ast.WalkContinue, nil
		}
		switch {
		case p.inParagraph:
			p.emit(notes.Paragraph{Text: p.text()})
			p.buf.Reset()
			p.inParagraph = false
		case p.inList:
			if t := p.text(); t != "" {
				p.items = append(p.items, t)
			}
			p.buf.Reset()
		case p.inBlockquote:
			// Keep accumulating; the quote emits as one element at
			// blockquote end, one source line per embedded newline.
			p.buf.WriteByte('\n')
		}

	case *ast.Blockquote:
		if entering {
			p.flushParagraph()
			p.inBlockquote = true
			return ast.WalkContinue, nil
		}
		p.emit(notes.BlockQuote{Text: p.text()})
		p.buf.Reset()
		p.inBlockquote = false

	case *ast.FencedCodeBlock:
		if !entering {
			return ast.WalkContinue, nil
		}
		p.flushParagraph()
		p.emit(notes.CodeBlock{
			Language: string(n.Language(p.source)),
			Code:     p.blockLines(n),
		})
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if !entering {
			return ast.WalkContinue, nil
		}
		p.flushParagraph()
		p.emit(notes.CodeBlock{Code: p.blockLines(n)})
		return ast.WalkSkipChildren, nil

	case *ast.List:
		if entering {
			p.flushParagraph()
			p.inList = true
			p.ordered = n.IsOrdered()
			p.items = nil
			return ast.WalkContinue, nil
		}
		if len(p.items) > 0 {
			p.emit(notes.List{Items: p.items, Ordered: p.ordered})
			p.items = nil
		}
		p.inList = false

	case *ast.ListItem:
		if entering {
			return ast.WalkContinue, nil
		}
		// Normally drained by the item's paragraph/text block end.
		if t := p.text(); t != "" && p.inList {
			p.items = append(p.items, t)
		}
		p.buf.Reset()

	case *ast.ThematicBreak:
		if entering {
			p.flushParagraph()
			p.emit(notes.Rule{})
		}

	case *ast.Text:
		if entering {
			p.buf.Write(n.Segment.Value(p.source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				p.lineBreak()
			}
		}

	case *ast.String:
		if entering {
			p.buf.Write(n.Value)
		}

	case *ast.Emphasis:
		marker := "*"
		if n.Level > 1 {
			marker = "**"
		}
		p.buf.WriteString(marker)
		if n.Level > 1 {
			p.inBold = entering
		} else {
			p.inItalic = entering
		}

	case *ast.CodeSpan:
		if !entering {
			return ast.WalkContinue, nil
		}
		// Standalone element, never merged into the surrounding text run.
		// Backticks inside fenced blocks never reach here: code block
		// content is captured wholesale above.
		p.emit(notes.InlineCode{Text: p.spanText(n)})
		return ast.WalkSkipChildren, nil

	case *ast.Link:
		if entering {
			p.linkMark = p.buf.Len()
			return ast.WalkContinue, nil
		}
		label := strings.TrimSpace(p.buf.String()[p.linkMark:])
		p.buf.Truncate(p.linkMark)
		p.emit(notes.Link{Text: label, URL: string(n.Destination)})

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(p.source))
			p.emit(notes.Link{Text: url, URL: url})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Image, *ast.RawHTML, *ast.HTMLBlock:
		// Out of scope: images and HTML passthrough.
		return ast.WalkSkipChildren, nil

	case *east.Table:
		if entering {
			p.flushParagraph()
			p.inTable = true
			p.headers = nil
			p.rows = nil
			p.aligns = alignments(n.Alignments)
			return ast.WalkContinue, nil
		}
		p.emit(notes.Table{Headers: p.headers, Rows: p.rows, Alignments: p.aligns})
		p.inTable = false

	case *east.TableHeader, *east.TableRow:
		if entering {
			p.row = nil
			return ast.WalkContinue, nil
		}
		// The first completed row while headers are still empty is the
		// header row; every later row is data.
		if p.headers == nil {
			p.headers = p.row
		} else {
			p.rows = append(p.rows, p.row)
		}
		p.row = nil

	case *east.TableCell:
		if !entering {
			p.row = append(p.row, p.text())
			p.buf.Reset()
		}
	}

	return ast.WalkContinue, nil
}

// lineBreak records a source line break in the accumulating buffer.
// Blockquotes keep the newline so each source line renders with its own bar
// prefix; everywhere else the break collapses to a space for word wrapping.
func (p *docParser) lineBreak() {
	if p.inBlockquote {
		p.buf.WriteByte('\n')
	} else {
		p.buf.WriteByte(' ')
	}
}

// blockLines collects a code block's raw body, trailing newline trimmed.
func (p *docParser) blockLines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(p.source))
	}
	return strings.TrimRight(b.String(), "\n")
}

// spanText collects the literal text of an inline node's children.
func (p *docParser) spanText(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(p.source))
		}
	}
	return b.String()
}

func alignments(in []east.Alignment) []notes.Alignment {
	out := make([]notes.Alignment, len(in))
	for i, a := range in {
		switch a {
		case east.AlignCenter:
			out[i] = notes.AlignCenter
		case east.AlignRight:
			out[i] = notes.AlignRight
		default:
			// Unspecified alignment defaults to left.
			out[i] = notes.AlignLeft
		}
	}
	return out
}

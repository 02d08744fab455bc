// Package render converts parsed markdown elements into styled,
// line-wrapped terminal rows. It is a pure transformation: no I/O, no
// shared state, and no failure mode; element kinds it does not recognize
// are skipped.
package render

import (
	"strconv"
	"strings"

	"github.com/fwojciec/notes"
)

// Render converts an element sequence into terminal rows wrapped at width.
// A non-positive width defaults to 80.
func Render(elements []notes.Element, width int, theme notes.Theme) []notes.Line {
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render(elements, width)
}

const ruleWidth = 60

type renderer struct {
	marker      notes.Style
	listMarker  notes.Style
	code        notes.Style
	link        notes.Style
	quoteBar    notes.Style
	quoteText   notes.Style
	border      notes.Style
	tableHeader notes.Style
	rowText     notes.Style
	bold        notes.Style
	italic      notes.Style
	plain       notes.Style

	headings [6]notes.Style
}

func newRenderer(t notes.Theme) *renderer {
	fg := func(c int) notes.Style {
		s := notes.PlainStyle()
		s.Foreground = c
		return s
	}
	r := &renderer{
		marker:      fg(t.Marker),
		listMarker:  fg(t.ListMarker),
		code:        notes.Style{Foreground: t.Code, Background: t.CodeBg},
		link:        fg(t.Link),
		quoteBar:    fg(t.Link),
		quoteText:   fg(t.Quote),
		border:      fg(t.Border),
		tableHeader: fg(t.ListMarker),
		rowText:     fg(t.RowText),
		bold:        notes.PlainStyle(),
		italic:      notes.PlainStyle(),
		plain:       notes.PlainStyle(),
	}
	r.link.Underline = true
	r.quoteText.Italic = true
	r.tableHeader.Bold = true
	r.bold.Bold = true
	r.italic.Italic = true

	levels := [6]int{t.Heading1, t.Heading2, t.Heading3, t.Heading4, t.Heading5, t.HeadingRest}
	for i, c := range levels {
		r.headings[i] = fg(c)
		r.headings[i].Bold = true
	}
	r.headings[0].Underline = true
	return r
}

// headingStyle maps a heading level to its style. Out-of-range levels are
// clamped into the default (level 6) bucket.
func (r *renderer) headingStyle(level int) notes.Style {
	if level < 1 || level > 6 {
		return r.headings[5]
	}
	return r.headings[level-1]
}

func (r *renderer) render(elements []notes.Element, width int) []notes.Line {
	var lines []notes.Line

	// blankBefore separates a block from preceding output. First element
	// gets no leading blank so documents never start with an empty row.
	blankBefore := func() {
		if len(lines) > 0 {
			lines = append(lines, notes.Line{})
		}
	}
	blankAfter := func() {
		lines = append(lines, notes.Line{})
	}

	for _, el := range elements {
		switch e := el.(type) {
		case notes.Heading:
			blankBefore()
			n := e.Level
			if n < 0 {
				n = 0
			}
			lines = append(lines, notes.Line{
				{Text: strings.Repeat("#", n) + " ", Style: r.marker},
				{Text: e.Text, Style: r.headingStyle(e.Level)},
			})
			blankAfter()

		case notes.Paragraph:
			lines = append(lines, r.wrap(e.Text, width)...)
			blankAfter()

		case notes.Text:
			lines = append(lines, r.wrap(e.Text, width)...)

		case notes.CodeBlock:
			blankBefore()
			fence := notes.Line{{Text: "```", Style: r.marker}}
			if e.Language != "" {
				fence = append(fence, notes.Span{Text: e.Language, Style: r.listMarker})
			}
			lines = append(lines, fence)
			if e.Code != "" {
				for _, ln := range strings.Split(e.Code, "\n") {
					lines = append(lines, notes.Line{{Text: "  " + ln, Style: r.code}})
				}
			}
			lines = append(lines, notes.Line{{Text: "```", Style: r.marker}})
			blankAfter()

		case notes.InlineCode:
			lines = append(lines, notes.Line{{Text: "`" + e.Text + "`", Style: r.code}})

		case notes.Link:
			// The URL is deliberately not printed; the viewer shows link
			// presence, not destinations.
			lines = append(lines, notes.Line{{Text: "[" + e.Text + "]", Style: r.link}})

		case notes.List:
			for i, item := range e.Items {
				prefix := "• "
				if e.Ordered {
					prefix = strconv.Itoa(i+1) + ". "
				}
				lines = append(lines, notes.Line{
					{Text: prefix, Style: r.listMarker},
					{Text: item, Style: r.plain},
				})
			}
			blankAfter()

		case notes.BlockQuote:
			if e.Text != "" {
				for _, ln := range strings.Split(e.Text, "\n") {
					lines = append(lines, notes.Line{
						{Text: "▎ ", Style: r.quoteBar},
						{Text: ln, Style: r.quoteText},
					})
				}
			}
			blankAfter()

		case notes.Rule:
			lines = append(lines, notes.Line{{Text: strings.Repeat("─", ruleWidth), Style: r.marker}})
			blankAfter()

		case notes.Table:
			blankBefore()
			lines = append(lines, r.table(e)...)
			blankAfter()

		default:
			// Unknown element kinds are skipped.
		}
	}

	return lines
}

package render

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/fwojciec/notes"
)

// wrap splits text on whitespace and packs words onto lines, one space
// between words, flushing whenever the next word would push the line past
// width. A single word wider than width gets its own unwrapped line. An
// empty input produces exactly one empty line, never zero.
//
// Each whitespace-delimited token is independently checked for emphasis
// markers. Only a token wholly wrapped in **...**, *...* or `...` is
// styled (markers stripped); a marker pair spanning multiple tokens, like
// **two words**, is not recognized. This is a known simplification: block
// structure comes from the parser, but inline emphasis is re-derived here
// from the literal delimiters.
func (r *renderer) wrap(text string, width int) []notes.Line {
	var lines []notes.Line
	var cur notes.Line
	length := 0

	for _, word := range strings.Fields(text) {
		w := uniseg.StringWidth(word)

		if length+w+1 > width && len(cur) > 0 {
			lines = append(lines, cur)
			cur = nil
			length = 0
		}
		if len(cur) > 0 {
			cur = append(cur, notes.Span{Text: " ", Style: r.plain})
			length++
		}
		cur = append(cur, r.styleWord(word))
		length += w
	}

	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		lines = append(lines, notes.Line{})
	}
	return lines
}

func (r *renderer) styleWord(word string) notes.Span {
	switch {
	case strings.HasPrefix(word, "**") && strings.HasSuffix(word, "**") && len(word) > 4:
		return notes.Span{Text: word[2 : len(word)-2], Style: r.bold}
	case strings.HasPrefix(word, "*") && strings.HasSuffix(word, "*") && len(word) > 2:
		return notes.Span{Text: word[1 : len(word)-1], Style: r.italic}
	case strings.HasPrefix(word, "`") && strings.HasSuffix(word, "`") && len(word) > 2:
		return notes.Span{Text: word[1 : len(word)-1], Style: r.code}
	default:
		return notes.Span{Text: word, Style: r.plain}
	}
}

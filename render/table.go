package render

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/fwojciec/notes"
)

// table renders a full box-drawn table: top border, header row, separator,
// one line per data row, bottom border. Column count follows the header;
// ragged rows are tolerated: missing cells render empty and extra cells
// are dropped.
func (r *renderer) table(t notes.Table) []notes.Line {
	widths := columnWidths(t)

	lines := []notes.Line{
		r.borderLine(widths, "┌", "┬", "┐"),
		r.cellsLine(t.Headers, t, widths, r.tableHeader),
		r.borderLine(widths, "├", "┼", "┤"),
	}
	for _, row := range t.Rows {
		lines = append(lines, r.cellsLine(row, t, widths, r.rowText))
	}
	return append(lines, r.borderLine(widths, "└", "┴", "┘"))
}

// columnWidths computes each column's inner width: the widest cell in the
// column (header included, absent cells count as zero) plus one space of
// padding on each side.
func columnWidths(t notes.Table) []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		w := uniseg.StringWidth(h)
		for _, row := range t.Rows {
			if i < len(row) {
				if cw := uniseg.StringWidth(row[i]); cw > w {
					w = cw
				}
			}
		}
		widths[i] = w + 2
	}
	return widths
}

func (r *renderer) borderLine(widths []int, left, mid, right string) notes.Line {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	return notes.Line{{Text: b.String(), Style: r.border}}
}

func (r *renderer) cellsLine(cells []string, t notes.Table, widths []int, style notes.Style) notes.Line {
	line := notes.Line{{Text: "│", Style: r.border}}
	for i := range t.Headers {
		var content string
		if i < len(cells) {
			content = cells[i]
		}
		align := notes.AlignLeft
		if i < len(t.Alignments) {
			align = t.Alignments[i]
		}
		line = append(line,
			notes.Span{Text: " " + pad(content, widths[i]-2, align) + " ", Style: style},
			notes.Span{Text: "│", Style: r.border},
		)
	}
	return line
}

// pad fits s into width cells honoring the column alignment.
func pad(s string, width int, align notes.Alignment) string {
	gap := width - uniseg.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case notes.AlignRight:
		return strings.Repeat(" ", gap) + s
	case notes.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

package notes

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Heading1    int // level-1 heading text
	Heading2    int
	Heading3    int
	Heading4    int
	Heading5    int
	HeadingRest int // level 6 and clamped out-of-range levels
	Marker      int // heading # prefix, fences, rules
	ListMarker  int // list bullets and numbers, table header text
	Code        int // code foreground
	CodeBg      int // code background
	Link        int // link text, blockquote bar
	Quote       int // blockquote body
	Border      int // table borders
	RowText     int // table data cells
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Heading1:    1, // red
		Heading2:    3, // yellow
		Heading3:    2, // green
		Heading4:    4, // blue
		Heading5:    5, // magenta
		HeadingRest: 6, // cyan
		Marker:      8, // bright black
		ListMarker:  3, // yellow
		Code:        2, // green
		CodeBg:      0, // black
		Link:        4, // blue
		Quote:       7, // white
		Border:      6, // cyan
		RowText:     7, // white
	}
}

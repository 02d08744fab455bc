package notes

// Element is a sealed interface representing one semantic unit of parsed
// markdown. Elements are produced in source order and hold no references to
// each other. The unexported marker method prevents external implementations,
// which lets the renderer treat the variant set as closed.
type Element interface {
	element()
}

// Heading is an ATX heading. Level is 1-6 as written in the source; the
// renderer clamps out-of-range values to a default style bucket.
type Heading struct {
	Level int
	Text  string
}

func (Heading) element() {}

// Paragraph is a block of flowing text, trimmed, with inline emphasis
// markers preserved literally for the renderer's word-wrap pass.
type Paragraph struct {
	Text string
}

func (Paragraph) element() {}

// CodeBlock is a fenced or indented code block. Language is empty when the
// fence carried no tag. Code is the raw body with the trailing newline
// trimmed.
type CodeBlock struct {
	Language string
	Code     string
}

func (CodeBlock) element() {}

// InlineCode is a single-backtick span outside a code block. It is emitted
// as a standalone element rather than merged into the surrounding paragraph.
type InlineCode struct {
	Text string
}

func (InlineCode) element() {}

// Link is a markdown link. Text is the content accumulated between the
// link's start and end; URL is the destination.
type Link struct {
	Text string
	URL  string
}

func (Link) element() {}

// List is a flat list. Items hold each item's trimmed text; Ordered is set
// when the source list carried a start number.
type List struct {
	Items   []string
	Ordered bool
}

func (List) element() {}

// BlockQuote is a quoted block. Multi-line quotes keep embedded newlines in
// Text; the renderer emits one prefixed line per embedded line.
type BlockQuote struct {
	Text string
}

func (BlockQuote) element() {}

// Rule is a horizontal divider. No payload.
type Rule struct{}

func (Rule) element() {}

// Text is loose text not captured by another variant (residual content at
// end of input outside any open paragraph).
type Text struct {
	Text string
}

func (Text) element() {}

// Table is a GFM table. Rows may be ragged relative to Headers: missing
// cells render empty and extra cells are dropped by column count at render
// time.
type Table struct {
	Headers    []string
	Rows       [][]string
	Alignments []Alignment
}

func (Table) element() {}

// Alignment is a table column alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Interface compliance checks.
var (
	_ Element = Heading{}
	_ Element = Paragraph{}
	_ Element = CodeBlock{}
	_ Element = InlineCode{}
	_ Element = Link{}
	_ Element = List{}
	_ Element = BlockQuote{}
	_ Element = Rule{}
	_ Element = Text{}
	_ Element = Table{}
)

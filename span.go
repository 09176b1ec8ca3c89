package lessonfmt

import "strings"

// SpanKind identifies how a span of lesson text is styled.
type SpanKind uint8

const (
	// SpanPlain is unstyled text, including stray delimiters.
	SpanPlain SpanKind = iota
	// SpanBold is text inside **double asterisks**.
	SpanBold
	// SpanCode is text inside `backticks`.
	SpanCode
	// SpanItalic is text inside *single asterisks*.
	SpanItalic
	// SpanUnderline is text inside __double underscores__.
	SpanUnderline
	// SpanColored is bold text inside {token:text} with a resolved color.
	SpanColored
)

var spanKindNames = [...]string{
	SpanPlain:     "plain",
	SpanBold:      "bold",
	SpanCode:      "code",
	SpanItalic:    "italic",
	SpanUnderline: "underline",
	SpanColored:   "colored",
}

func (k SpanKind) String() string {
	if int(k) < len(spanKindNames) {
		return spanKindNames[k]
	}
	return "unknown"
}

// Span is one contiguous run of output text. ColorToken and Color are only
// set for SpanColored.
type Span struct {
	Kind       SpanKind
	Text       string
	ColorToken string
	Color      Color
}

// PlainText joins the text of spans in order, which is the source content
// with markup delimiters removed.
func PlainText(spans []Span) string {
	switch len(spans) {
	case 0:
		return ""
	case 1:
		return spans[0].Text
	}
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	var b strings.Builder
	b.Grow(n)
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

package lessonfmt

import "regexp"

// markupPattern lists the inline rules in precedence order. Alternation is
// leftmost-first, so at any position **bold** is tried before *italic*, and
// every body is non-greedy and stops at the end of a line.
var markupPattern = regexp.MustCompile(
	`\*\*(.*?)\*\*` +
		"|`(.*?)`" +
		`|\*(.*?)\*` +
		`|__(.*?)__` +
		`|\{(.*?):(.*?)\}`,
)

// Parse splits lesson content into styled spans:
//
//	**text**        bold
//	`text`          code
//	*text*          italic
//	__text__        underline
//	{token:text}    bold, colored by ResolveColor(token, lookup)
//
// Anything else, including unpaired delimiters, is plain text. Spans do not
// nest and Parse never fails; empty content yields no spans.
func Parse(content string, lookup ColorLookup) []Span {
	if content == "" {
		return nil
	}
	matches := markupPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return []Span{{Kind: SpanPlain, Text: content}}
	}
	spans := make([]Span, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, Span{Kind: SpanPlain, Text: content[last:m[0]]})
		}
		spans = append(spans, matchSpan(content, m, lookup))
		last = m[1]
	}
	if last < len(content) {
		spans = append(spans, Span{Kind: SpanPlain, Text: content[last:]})
	}
	return spans
}

// matchSpan builds the span for one match; m holds submatch offsets in the
// group order of markupPattern.
func matchSpan(content string, m []int, lookup ColorLookup) Span {
	switch {
	case m[2] >= 0:
		return Span{Kind: SpanBold, Text: content[m[2]:m[3]]}
	case m[4] >= 0:
		return Span{Kind: SpanCode, Text: content[m[4]:m[5]]}
	case m[6] >= 0:
		return Span{Kind: SpanItalic, Text: content[m[6]:m[7]]}
	case m[8] >= 0:
		return Span{Kind: SpanUnderline, Text: content[m[8]:m[9]]}
	}
	// Only the first ':' separates the token; the text group may hold more.
	token := content[m[10]:m[11]]
	return Span{
		Kind:       SpanColored,
		Text:       content[m[12]:m[13]],
		ColorToken: token,
		Color:      ResolveColor(token, lookup),
	}
}

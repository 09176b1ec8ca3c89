package lesson

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"pkt.systems/lessonfmt"
	"pkt.systems/lessonfmt/highlight"
)

const (
	ansiReset     = "\x1b[0m"
	sectionMarker = "✦ "
	calloutGutter = "▌ "
	codeIndent    = "  "
)

// RenderRequest configures Render.
type RenderRequest struct {
	Document Document
	Writer   io.Writer
	Width    int
	Theme    lessonfmt.Theme
	// Lookup resolves {token:text} colors. Nil uses lessonfmt.PaletteLookup.
	Lookup  lessonfmt.ColorLookup
	Options []lessonfmt.RenderOption
}

// Render writes the document as themed terminal text. Blocks are separated
// by blank lines; interactive component blocks are skipped.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("lesson render: writer is nil")
	}
	if err := req.Document.Validate(); err != nil {
		return err
	}
	theme := req.Theme
	if theme == nil {
		theme = lessonfmt.DefaultTheme()
	}
	lookup := req.Lookup
	if lookup == nil {
		lookup = lessonfmt.PaletteLookup()
	}
	r := renderer{
		styles: theme.Styles(),
		lookup: lookup,
		width:  req.Width,
		opts:   req.Options,
		log:    lessonfmt.NewRenderConfig(req.Options...).Logger,
	}
	doc := req.Document
	paragraphs := []string{r.header(doc)}
	for _, section := range doc.Sections {
		if section.Title != "" {
			paragraphs = append(paragraphs, r.wrap(sectionMarker+section.Title, r.styles.Section, r.width))
		}
		for _, block := range section.Blocks {
			if p, ok := r.block(block); ok {
				paragraphs = append(paragraphs, p)
			}
		}
	}
	r.log.Debug("rendered lesson",
		zap.String("lesson", doc.ID),
		zap.Int("sections", len(doc.Sections)),
		zap.Int("paragraphs", len(paragraphs)),
	)
	if _, err := io.WriteString(req.Writer, strings.Join(paragraphs, "\n\n")+"\n"); err != nil {
		return fmt.Errorf("lesson render: write: %w", err)
	}
	return nil
}

type renderer struct {
	styles lessonfmt.Styles
	lookup lessonfmt.ColorLookup
	width  int
	opts   []lessonfmt.RenderOption
	log    *zap.Logger
}

func (r renderer) header(doc Document) string {
	var meta strings.Builder
	if unit := oneLine(doc.Unit); unit != "" {
		meta.WriteString("UNIT ")
		meta.WriteString(strings.ToUpper(strings.TrimPrefix(unit, "unit-")))
		meta.WriteString(" • ")
	}
	meta.WriteString("LESSON • ")
	meta.WriteString(strconv.Itoa(doc.ReadingMinutes()))
	meta.WriteString(" MIN • ")
	meta.WriteString(humanize.Comma(int64(doc.WordCount())))
	meta.WriteString(" WORDS")
	return r.wrap(doc.Title, r.styles.Title, r.width) + "\n" + r.wrap(meta.String(), r.styles.Meta, r.width)
}

func (r renderer) block(b Block) (string, bool) {
	if err := b.Check(); err != nil {
		r.log.Warn("skipping invalid block",
			zap.String("block", b.ID),
			zap.String("type", b.Type),
			zap.Error(err),
		)
		return "", false
	}
	switch b.Type {
	case BlockText:
		if b.Content == "" {
			return "", false
		}
		return lessonfmt.FormatContent(b.Content, r.styles, r.lookup, r.width, r.opts...), true
	case BlockCode:
		return r.code(b), true
	case BlockCallout:
		return r.callout(b), true
	default:
		r.log.Debug("skipping interactive block",
			zap.String("block", b.ID),
			zap.String("type", b.Type),
			zap.String("component", b.ComponentType),
		)
		return "", false
	}
}

func (r renderer) code(b Block) string {
	language := oneLine(b.Language)
	if language == "" {
		language = defaultLanguage
	}
	lines := []string{paint(r.styles.Meta, strings.ToUpper(language))}
	limit := r.width - len(codeIndent)
	code := lessonfmt.SanitizeText(b.Content)
	for _, line := range highlight.Lines(highlight.Highlight(code, language)) {
		var out strings.Builder
		for _, seg := range line {
			out.WriteString(paint(r.codeStyle(seg.Class), seg.Text))
		}
		text := out.String()
		if r.width > 0 && limit > 0 {
			text = truncate.StringWithTail(text, uint(limit), "…")
		}
		if text == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, codeIndent+text)
	}
	return strings.Join(lines, "\n")
}

func (r renderer) codeStyle(c highlight.Class) lessonfmt.Style {
	switch c {
	case highlight.Keyword:
		return r.styles.CodeKeyword
	case highlight.Function:
		return r.styles.CodeFunction
	case highlight.String:
		return r.styles.CodeString
	case highlight.Comment:
		return r.styles.CodeComment
	default:
		return r.styles.CodeBlock
	}
}

func (r renderer) callout(b Block) string {
	title := oneLine(b.Title)
	if title == "" {
		title = defaultCalloutTitle
	}
	gutter := paint(r.styles.CalloutTitle, strings.TrimSpace(calloutGutter)) + " "
	width := r.width
	if width > 0 {
		width = max(width-len([]rune(calloutGutter)), 1)
	}
	lines := []string{gutter + paint(r.styles.CalloutTitle, title)}
	if b.Content != "" {
		styles := r.styles
		styles.Text = styles.Callout
		body := lessonfmt.FormatContent(b.Content, styles, r.lookup, width, r.opts...)
		for _, line := range strings.Split(body, "\n") {
			lines = append(lines, gutter+line)
		}
	}
	return strings.Join(lines, "\n")
}

// wrap renders a single-line label such as a title.
func (r renderer) wrap(text string, st lessonfmt.Style, width int) string {
	out := paint(st, oneLine(text))
	if width > 0 {
		out = wordwrap.String(out, width)
	}
	return out
}

// oneLine sanitizes a label and folds any line breaks into spaces.
func oneLine(s string) string {
	return strings.Join(strings.Fields(lessonfmt.SanitizeText(s)), " ")
}

func paint(st lessonfmt.Style, text string) string {
	if st.Prefix == "" || text == "" {
		return text
	}
	return st.Prefix + text + ansiReset
}

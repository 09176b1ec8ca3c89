package lessonfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"go.uber.org/zap"

	"pkt.systems/lessonfmt/internal/palette"
)

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

var spanBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, 256)
		return &buf
	},
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	Width  int
	Theme  Theme
	// Lookup resolves {token:text} colors. Nil uses PaletteLookup.
	Lookup  ColorLookup
	Options []RenderOption
}

// Render streams lesson markup from Reader to Writer as ANSI text, one
// input line at a time. Width <= 0 disables wrapping. A leading front
// matter block is omitted.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	lookup := req.Lookup
	if lookup == nil {
		lookup = PaletteLookup()
	}
	cfg := NewRenderConfig(req.Options...)
	styles := theme.Styles()

	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)
	defer func() {
		reader.Reset(nil)
		readerPool.Put(reader)
	}()

	var (
		v     validator
		fm    frontMatterFilter
		lines int
	)
	emit := func(texts []string) error {
		for _, text := range texts {
			out := formatLine(text, styles, lookup, req.Width, cfg)
			if _, err := io.WriteString(req.Writer, out+"\n"); err != nil {
				return fmt.Errorf("render: write: %w", err)
			}
		}
		return nil
	}
	for {
		line, readErr := reader.ReadString('\n')
		if line != "" {
			if err := v.add(line); err != nil {
				return fmt.Errorf("render: line %d: %w", lines+1, err)
			}
			lines++
			if err := emit(fm.push(SanitizeText(strings.TrimSuffix(line, "\n")))); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("render: read: %w", readErr)
		}
	}
	if err := emit(fm.finish()); err != nil {
		return err
	}
	cfg.Logger.Debug("rendered lesson content",
		zap.String("theme", theme.Name()),
		zap.Int("lines", lines),
		zap.Int("front_matter_lines", fm.dropped),
		zap.Int("width", req.Width),
	)
	return nil
}

// FormatContent renders content to ANSI text wrapped to width. Output lines
// are joined by "\n" without a trailing newline.
func FormatContent(content string, styles Styles, lookup ColorLookup, width int, opts ...RenderOption) string {
	if content == "" {
		return ""
	}
	cfg := NewRenderConfig(opts...)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = formatLine(SanitizeText(line), styles, lookup, width, cfg)
	}
	return strings.Join(lines, "\n")
}

// FormatSpans renders spans as ANSI text. Each styled span is closed with a
// reset so styles never leak into the next span.
func FormatSpans(spans []Span, styles Styles) string {
	bufp := spanBufPool.Get().(*[]byte)
	buf := (*bufp)[:0]
	for _, span := range spans {
		if span.Text == "" {
			continue
		}
		st := SpanStyle(styles, span)
		if st.Prefix == "" {
			buf = append(buf, span.Text...)
			continue
		}
		buf = append(buf, st.Prefix...)
		buf = append(buf, span.Text...)
		buf = append(buf, palette.Reset...)
	}
	out := string(buf)
	*bufp = buf[:0]
	spanBufPool.Put(bufp)
	return out
}

func formatLine(text string, styles Styles, lookup ColorLookup, width int, cfg RenderConfig) string {
	out := FormatSpans(Parse(text, lookup), styles)
	limit := width - cfg.Indent
	if width > 0 && limit < 1 {
		limit = 1
	}
	if width > 0 {
		out = wordwrap.String(out, limit)
		if cfg.SoftWrap {
			out = wrap.String(out, limit)
		}
	}
	if cfg.Indent > 0 {
		out = indent.String(out, uint(cfg.Indent))
	}
	return out
}

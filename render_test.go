package lessonfmt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func renderBoring(t *testing.T, src string, width int, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Width:   width,
		Theme:   BoringTheme(),
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func TestRenderWrapsPlainText(t *testing.T) {
	got := renderBoring(t, "alpha beta gamma", 6)
	want := "alpha\nbeta\ngamma\n"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestRenderStripsMarkupInBoringTheme(t *testing.T) {
	got := renderBoring(t, "Use **print()** to show `x` and {gold:this}.\n", 0)
	want := "Use print() to show x and this.\n"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestRenderKeepsLinesAndNormalizesCRLF(t *testing.T) {
	got := renderBoring(t, "one\r\n\r\n*two*\r\n", 0)
	want := "one\n\ntwo\n"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	if got := renderBoring(t, "", 20); got != "" {
		t.Fatalf("expected no output, got %q", got)
	}
}

func TestRenderSoftWrapBreaksLongWords(t *testing.T) {
	got := renderBoring(t, "abcdefghij", 4, WithSoftWrap(true))
	want := "abcd\nefgh\nij\n"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
	got = renderBoring(t, "abcdefghij", 4)
	if got != "abcdefghij\n" {
		t.Fatalf("expected long word to stay intact without soft wrap, got %q", got)
	}
}

func TestRenderIndent(t *testing.T) {
	got := renderBoring(t, "a b", 0, WithIndent(2))
	if got != "  a b\n" {
		t.Fatalf("unexpected indented output %q", got)
	}
}

func TestRenderStyledSpans(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader("Use **print()** now"),
		Writer: &out,
		Theme:  DefaultTheme(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	styles := DefaultTheme().Styles()
	want := styles.Text.Prefix + "Use " + "\x1b[0m" +
		styles.Strong.Prefix + "print()" + "\x1b[0m" +
		styles.Text.Prefix + " now" + "\x1b[0m\n"
	if out.String() != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, out.String())
	}
}

func TestRenderRejectsBinary(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: bytes.NewReader([]byte{'a', 0x00, 'b'}),
		Writer: &out,
		Theme:  BoringTheme(),
	})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	err = Render(RenderRequest{
		Reader: bytes.NewReader([]byte{'o', 'k', '\n', 0xff}),
		Writer: &out,
		Theme:  BoringTheme(),
	})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestRenderRequiresReaderAndWriter(t *testing.T) {
	if err := Render(RenderRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if err := Render(RenderRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestFormatContent(t *testing.T) {
	styles := BoringTheme().Styles()
	got := FormatContent("**alpha** beta gamma\n__delta__", styles, nil, 10)
	want := "alpha beta\ngamma\ndelta"
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
	if FormatContent("", styles, nil, 10) != "" {
		t.Fatalf("expected empty output for empty content")
	}
}

func TestFormatSpansSkipsEmptySpans(t *testing.T) {
	styles := DefaultTheme().Styles()
	got := FormatSpans([]Span{{Kind: SpanBold, Text: ""}, {Kind: SpanItalic, Text: "x"}}, styles)
	want := styles.Emphasis.Prefix + "x\x1b[0m"
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestRenderAllocations(t *testing.T) {
	src := []byte(strings.Repeat("Use **print()** to show `x` and {gold:this} in a lesson paragraph.\n", 50))
	allocs := testing.AllocsPerRun(20, func() {
		var out bytes.Buffer
		_ = Render(RenderRequest{
			Reader: bytes.NewReader(src),
			Writer: &out,
			Width:  60,
			Theme:  DefaultTheme(),
		})
	})
	if allocs > 20000 {
		t.Fatalf("too many allocations per Render: got %.2f", allocs)
	}
}

func BenchmarkRender(b *testing.B) {
	src := []byte(strings.Repeat("Use **print()** to show `x` and {gold:this} in a lesson paragraph.\n", 50))
	reader := bytes.NewReader(src)
	var out bytes.Buffer
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		reader.Reset(src)
		out.Reset()
		_ = Render(RenderRequest{
			Reader: reader,
			Writer: &out,
			Width:  80,
			Theme:  DefaultTheme(),
		})
	}
}

func TestFormatSpansReusesBuffer(t *testing.T) {
	styles := DefaultTheme().Styles()
	spans := []Span{{Kind: SpanBold, Text: "print()"}, {Kind: SpanItalic, Text: "now"}}
	first := FormatSpans(spans, styles)
	second := FormatSpans([]Span{{Kind: SpanUnderline, Text: "x"}}, styles)
	if first != styles.Strong.Prefix+"print()\x1b[0m"+styles.Emphasis.Prefix+"now\x1b[0m" {
		t.Fatalf("unexpected first output %q", first)
	}
	if second != styles.Underline.Prefix+"x\x1b[0m" {
		t.Fatalf("unexpected second output %q", second)
	}
	allocs := testing.AllocsPerRun(100, func() {
		_ = FormatSpans(spans, styles)
	})
	if allocs > 1.5 {
		t.Fatalf("expected one allocation per FormatSpans, got %.2f", allocs)
	}
}

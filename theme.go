package lessonfmt

import (
	"sort"
	"strings"

	"pkt.systems/lessonfmt/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used for lesson content.
type Styles struct {
	Text         Style
	Strong       Style
	Emphasis     Style
	Underline    Style
	CodeInline   Style
	CodeBlock    Style
	CodeKeyword  Style
	CodeFunction Style
	CodeString   Style
	CodeComment  Style
	Title        Style
	Meta         Style
	Section      Style
	Callout      Style
	CalloutTitle Style
	// Background is the CSS color translucent span colors are blended over.
	Background string
	// Monochrome drops span colors from {token:text} spans.
	Monochrome bool
}

// Theme provides named styles for lesson rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:         style(p.Fg(p.Text)),
		Strong:       style(palette.Bold, p.Fg(p.Strong)),
		Emphasis:     style(palette.Italic, p.Fg(p.Emphasis)),
		Underline:    style(palette.Underline, p.Fg(p.Underline)),
		CodeInline:   style(p.Fg(p.CodeInline), p.Fill(p.CodeInlineFill)),
		CodeBlock:    style(p.Fg(p.CodeText)),
		CodeKeyword:  style(p.Fg(p.Keyword)),
		CodeFunction: style(p.Fg(p.Function)),
		CodeString:   style(p.Fg(p.String)),
		CodeComment:  style(palette.Italic, p.Fg(p.Comment)),
		Title:        style(palette.Bold, p.Fg(p.Title)),
		Meta:         style(p.Fg(p.Meta)),
		Section:      style(palette.Bold, p.Fg(p.Section)),
		Callout:      style(p.Fg(p.Callout)),
		CalloutTitle: style(palette.Bold, p.Fg(p.CalloutTitle)),
		Background:   p.Background,
	}
}

var builtinThemes = map[string]Theme{
	"default":  theme{name: "default", styles: stylesFromPalette(palette.Night)},
	"night":    theme{name: "night", styles: stylesFromPalette(palette.Night)},
	"daylight": theme{name: "daylight", styles: stylesFromPalette(palette.Daylight)},
	"boring":   theme{name: "boring", styles: Styles{Monochrome: true}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme that emits no escape sequences.
func BoringTheme() Theme {
	return builtinThemes["boring"]
}

// SpanStyle returns the style for span. Colored spans are bold in their
// resolved color unless the styles are monochrome.
func SpanStyle(styles Styles, span Span) Style {
	switch span.Kind {
	case SpanBold:
		return styles.Strong
	case SpanCode:
		return styles.CodeInline
	case SpanItalic:
		return styles.Emphasis
	case SpanUnderline:
		return styles.Underline
	case SpanColored:
		if styles.Monochrome {
			return styles.Strong
		}
		fg := palette.Foreground(string(span.Color), styles.Background)
		if fg == "" {
			return styles.Strong
		}
		return style(palette.Bold, fg)
	default:
		return styles.Text
	}
}

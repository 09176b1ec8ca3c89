// Package palette holds the lesson app colors and the ANSI sequences derived
// from them.
package palette

// Palette assigns CSS colors to the semantic slots of a theme.
type Palette struct {
	Background     string
	Text           string
	Strong         string
	Emphasis       string
	Underline      string
	CodeInline     string
	CodeInlineFill string
	CodeText       string
	Keyword        string
	Function       string
	String         string
	Comment        string
	Title          string
	Meta           string
	Section        string
	Callout        string
	CalloutTitle   string
}

// Night mirrors the app's dark lesson screen.
var Night = Palette{
	Background:     Colors["backgroundDark"],
	Text:           Colors["whiteAlpha80"],
	Strong:         Colors["white"],
	Emphasis:       Colors["whiteAlpha90"],
	Underline:      Colors["whiteAlpha80"],
	CodeInline:     Colors["primaryLight"],
	CodeInlineFill: Colors["whiteAlpha10"],
	CodeText:       "#abb2bf",
	Keyword:        "#c678dd",
	Function:       "#61afef",
	String:         "#98c379",
	Comment:        "#5c6370",
	Title:          Colors["white"],
	Meta:           Colors["gray400"],
	Section:        Colors["primaryLight"],
	Callout:        Colors["whiteAlpha90"],
	CalloutTitle:   Colors["yellow400"],
}

// Daylight is a light variant for bright terminals.
var Daylight = Palette{
	Background:     Colors["backgroundLight"],
	Text:           Colors["gray800"],
	Strong:         Colors["black"],
	Emphasis:       Colors["gray700"],
	Underline:      Colors["gray800"],
	CodeInline:     Colors["primaryDark"],
	CodeInlineFill: "rgba(127, 13, 242, 0.08)",
	CodeText:       "#383a42",
	Keyword:        "#a626a4",
	Function:       "#4078f2",
	String:         "#50a14f",
	Comment:        "#a0a1a7",
	Title:          Colors["black"],
	Meta:           Colors["gray500"],
	Section:        Colors["primary"],
	Callout:        Colors["gray700"],
	CalloutTitle:   Colors["accentOrange"],
}

// Fg returns the foreground escape of a palette slot.
func (p Palette) Fg(css string) string {
	return Foreground(css, p.Background)
}

// Fill returns the background escape of a palette slot.
func (p Palette) Fill(css string) string {
	return BackgroundFill(css, p.Background)
}

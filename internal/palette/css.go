package palette

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// Reset clears all SGR attributes.
	Reset = "\x1b[0m"
	// Bold enables bold text.
	Bold = "\x1b[1m"
	// Italic enables italic text.
	Italic = "\x1b[3m"
	// Underline enables underlined text.
	Underline = "\x1b[4m"
)

// ParseCSS parses a hex (#rgb, #rrggbb) or rgba()/rgb() color. The returned
// alpha is 1 for opaque colors.
func ParseCSS(css string) (colorful.Color, float64, error) {
	value := strings.TrimSpace(css)
	if strings.HasPrefix(value, "#") {
		c, err := colorful.Hex(strings.ToLower(value))
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("palette: parse %q: %w", css, err)
		}
		return c, 1, nil
	}
	lower := strings.ToLower(value)
	var body string
	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		body = lower[len("rgba(") : len(lower)-1]
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		body = lower[len("rgb(") : len(lower)-1]
	default:
		return colorful.Color{}, 0, fmt.Errorf("palette: unsupported color %q", css)
	}
	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return colorful.Color{}, 0, fmt.Errorf("palette: malformed color %q", css)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("palette: channel %d of %q: %w", i, css, err)
		}
		rgb[i] = uint8(n)
	}
	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("palette: alpha of %q: %w", css, err)
		}
		alpha = min(max(a, 0), 1)
	}
	c := colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
	return c, alpha, nil
}

// Flatten resolves css against the background color, blending translucent
// colors over it.
func Flatten(css, background string) (colorful.Color, bool) {
	c, alpha, err := ParseCSS(css)
	if err != nil {
		return colorful.Color{}, false
	}
	if alpha >= 1 {
		return c, true
	}
	bg, _, err := ParseCSS(background)
	if err != nil {
		bg = colorful.Color{}
	}
	return bg.BlendRgb(c, alpha).Clamped(), true
}

// Foreground returns a 24-bit foreground escape for css, or "" when the
// color cannot be parsed.
func Foreground(css, background string) string {
	c, ok := Flatten(css, background)
	if !ok {
		return ""
	}
	r, g, b := c.RGB255()
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

// BackgroundFill returns a 24-bit background escape for css, or "".
func BackgroundFill(css, background string) string {
	c, ok := Flatten(css, background)
	if !ok {
		return ""
	}
	r, g, b := c.RGB255()
	return "\x1b[48;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

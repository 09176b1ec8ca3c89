package lessonfmt

import (
	"strings"

	"pkt.systems/lessonfmt/internal/palette"
)

// Color is a CSS color value: #rrggbb, #rgb, or rgba(r, g, b, a).
type Color string

// ColorLookup resolves a color token. A nil ColorLookup knows no tokens.
type ColorLookup func(token string) (Color, bool)

// Fixed colors used when a token is not found in the lookup.
const (
	Yellow400    Color = "#facc15"
	Teal400      Color = "#2dd4bf"
	Blue400      Color = "#60a5fa"
	Orange400    Color = "#fb923c"
	Red400       Color = "#f87171"
	Green400     Color = "#4ade80"
	DefaultColor Color = "#ffffff"
)

var friendlyColors = []struct {
	name  string
	color Color
}{
	{"gold", Yellow400},
	{"cyan", Teal400},
	{"blue", Blue400},
	{"orange", Orange400},
	{"red", Red400},
	{"green", Green400},
}

// ResolveColor looks token up verbatim, then falls back to the friendly
// color names (case-insensitive), then to DefaultColor.
func ResolveColor(token string, lookup ColorLookup) Color {
	if lookup != nil {
		if c, ok := lookup(token); ok && c != "" {
			return c
		}
	}
	lower := strings.ToLower(token)
	for _, f := range friendlyColors {
		if f.name == lower {
			return f.color
		}
	}
	return DefaultColor
}

// MapLookup returns a ColorLookup backed by m. The map must not be mutated
// while the lookup is in use.
func MapLookup(m map[string]Color) ColorLookup {
	return func(token string) (Color, bool) {
		c, ok := m[token]
		return c, ok
	}
}

// PaletteLookup resolves tokens against the app color table, e.g.
// "primaryLight" or "whiteAlpha80".
func PaletteLookup() ColorLookup {
	return func(token string) (Color, bool) {
		c, ok := palette.Colors[token]
		return Color(c), ok
	}
}

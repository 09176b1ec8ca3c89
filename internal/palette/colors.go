package palette

// Colors is the app color table keyed by the names lesson authors use in
// `{token:text}` spans.
var Colors = map[string]string{
	"primary":      "#7f0df2",
	"primaryLight": "#9d4df7",
	"primaryDark":  "#5e0ab5",

	"backgroundLight":  "#f7f5f8",
	"backgroundDark":   "#191022",
	"surfaceDark":      "#261834",
	"surfaceHighlight": "#2d203d",
	"cardDark":         "#2d1b3e",
	"codeBg":           "#0f0a15",

	"white": "#ffffff",
	"black": "#000000",

	"gray100": "#f3f4f6",
	"gray200": "#e5e7eb",
	"gray300": "#d1d5db",
	"gray400": "#9ca3af",
	"gray500": "#6b7280",
	"gray600": "#4b5563",
	"gray700": "#374151",
	"gray800": "#1f2937",
	"gray900": "#111827",

	"success": "#00d563",
	"error":   "#ff2e63",
	"warning": "#fbbf24",

	"accentGreen":  "#0bda73",
	"accentOrange": "#f59e0b",
	"accentBlue":   "#3b82f6",
	"accentPurple": "#8b5cf6",

	"gold":   "#FFD700",
	"silver": "#C0C0C0",
	"bronze": "#CD7F32",

	"yellow400": "#facc15",
	"teal400":   "#2dd4bf",
	"blue400":   "#60a5fa",
	"orange400": "#fb923c",
	"red400":    "#f87171",
	"green400":  "#4ade80",
	"purple400": "#c084fc",

	"primaryAlpha10": "rgba(127, 13, 242, 0.1)",
	"primaryAlpha20": "rgba(127, 13, 242, 0.2)",
	"primaryAlpha30": "rgba(127, 13, 242, 0.3)",
	"primaryAlpha40": "rgba(127, 13, 242, 0.4)",
	"primaryAlpha50": "rgba(127, 13, 242, 0.5)",

	"whiteAlpha5":  "rgba(255, 255, 255, 0.05)",
	"whiteAlpha10": "rgba(255, 255, 255, 0.1)",
	"whiteAlpha20": "rgba(255, 255, 255, 0.2)",
	"whiteAlpha40": "rgba(255, 255, 255, 0.4)",
	"whiteAlpha50": "rgba(255, 255, 255, 0.5)",
	"whiteAlpha60": "rgba(255, 255, 255, 0.6)",
	"whiteAlpha70": "rgba(255, 255, 255, 0.7)",
	"whiteAlpha80": "rgba(255, 255, 255, 0.8)",
	"whiteAlpha90": "rgba(255, 255, 255, 0.9)",

	"blackAlpha40": "rgba(0, 0, 0, 0.4)",
	"blackAlpha60": "rgba(0, 0, 0, 0.6)",
	"blackAlpha90": "rgba(0, 0, 0, 0.9)",
}

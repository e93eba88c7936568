package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette
// https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases
const (
	colorAccent  = colorMauve
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

// sectionColors tints personality sections in display order.
var sectionColors = []lipgloss.Color{colorPeach, colorTeal, colorLavender}

// icons resolves the opaque category icon tags to terminal glyphs.
var icons = map[string]string{
	"calendar": "▦",
	"users":    "☺",
	"activity": "⚡",
	"coffee":   "☕",
	"wine":     "🍷",
	"star":     "★",
}

func iconFor(tag string) string {
	if g, ok := icons[tag]; ok {
		return g
	}
	return "•"
}

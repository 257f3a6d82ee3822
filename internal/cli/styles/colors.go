package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cssColors holds the CSS named colors navigation documents commonly use.
var cssColors = map[string]string{
	"black":          "#000000",
	"white":          "#ffffff",
	"gray":           "#808080",
	"grey":           "#808080",
	"darkgray":       "#a9a9a9",
	"lightgray":      "#d3d3d3",
	"silver":         "#c0c0c0",
	"dimgray":        "#696969",
	"red":            "#ff0000",
	"darkred":        "#8b0000",
	"crimson":        "#dc143c",
	"tomato":         "#ff6347",
	"coral":          "#ff7f50",
	"orangered":      "#ff4500",
	"orange":         "#ffa500",
	"darkorange":     "#ff8c00",
	"gold":           "#ffd700",
	"yellow":         "#ffff00",
	"khaki":          "#f0e68c",
	"green":          "#008000",
	"darkgreen":      "#006400",
	"lime":           "#00ff00",
	"limegreen":      "#32cd32",
	"seagreen":       "#2e8b57",
	"olive":          "#808000",
	"teal":           "#008080",
	"cyan":           "#00ffff",
	"aqua":           "#00ffff",
	"turquoise":      "#40e0d0",
	"blue":           "#0000ff",
	"navy":           "#000080",
	"darkblue":       "#00008b",
	"royalblue":      "#4169e1",
	"steelblue":      "#4682b4",
	"dodgerblue":     "#1e90ff",
	"deepskyblue":    "#00bfff",
	"skyblue":        "#87ceeb",
	"lightblue":      "#add8e6",
	"midnightblue":   "#191970",
	"purple":         "#800080",
	"indigo":         "#4b0082",
	"violet":         "#ee82ee",
	"magenta":        "#ff00ff",
	"fuchsia":        "#ff00ff",
	"pink":           "#ffc0cb",
	"hotpink":        "#ff69b4",
	"brown":          "#a52a2a",
	"chocolate":      "#d2691e",
	"maroon":         "#800000",
	"beige":          "#f5f5dc",
	"ivory":          "#fffff0",
	"whitesmoke":     "#f5f5f5",
	"lightslategray": "#778899",
	"slategray":      "#708090",
}

// Palette resolves document color names to terminal colors.
type Palette struct {
	overrides map[string]string
}

// NewPalette creates a palette. overrides take precedence over CSS names.
func NewPalette(overrides map[string]string) Palette {
	p := Palette{overrides: make(map[string]string, len(overrides))}
	for name, value := range overrides {
		p.overrides[strings.ToLower(name)] = value
	}
	return p
}

// Resolve returns the color for name and whether it was recognized. Hex
// values and ANSI color numbers pass through.
func (p Palette) Resolve(name string) (lipgloss.Color, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "transparent" {
		return "", false
	}
	if v, ok := p.overrides[n]; ok {
		return lipgloss.Color(v), true
	}
	if v, ok := cssColors[n]; ok {
		return lipgloss.Color(v), true
	}
	if strings.HasPrefix(n, "#") || isANSI(n) {
		return lipgloss.Color(n), true
	}
	return "", false
}

// Or resolves name, falling back to def.
func (p Palette) Or(name string, def lipgloss.Color) lipgloss.Color {
	if c, ok := p.Resolve(name); ok {
		return c
	}
	return def
}

func isANSI(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

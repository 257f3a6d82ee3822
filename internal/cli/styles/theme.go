// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabshell/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Palette Palette

	// Base colors
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color

	// Tab and list tints from config.Appearance
	ActiveTint     lipgloss.Color
	InactiveTint   lipgloss.Color
	ItemColor      string
	IndicatorColor string

	// Pre-built styles
	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style

	Header    lipgloss.Style
	TabBar    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	Skeleton lipgloss.Style
	LinkRef  lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates a Theme from config. A nil config uses the defaults.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := cfg.Appearance
	p := NewPalette(a.Palette)

	t := &Theme{
		Palette:        p,
		Background:     lipgloss.Color("#0a0a0b"),
		Surface:        lipgloss.Color("#1a1a1b"),
		SurfaceVariant: lipgloss.Color("#2d2d2d"),
		Text:           lipgloss.Color("#ffffff"),
		Muted:          lipgloss.Color("#909090"),
		Accent:         lipgloss.Color("#4ade80"),
		Border:         lipgloss.Color("#333333"),
		Error:          lipgloss.Color("#ef4444"),
		ItemColor:      a.ItemColor,
		IndicatorColor: a.IndicatorColor,
	}
	t.ActiveTint = p.Or(a.ActiveTint, t.Accent)
	t.InactiveTint = p.Or(a.InactiveTint, t.Muted)

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		Padding(0, 1)

	t.TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(t.Border)

	t.Tab = lipgloss.NewStyle().
		Padding(0, 2)

	t.ActiveTab = t.Tab.
		Bold(true)

	t.ListItem = lipgloss.NewStyle().
		Foreground(t.Text).
		PaddingLeft(1)

	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		PaddingLeft(1).
		Bold(true)

	t.Skeleton = lipgloss.NewStyle().
		Foreground(t.SurfaceVariant)

	t.LinkRef = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}

// Color resolves a document color name, falling back to def.
func (t *Theme) Color(name string, def lipgloss.Color) lipgloss.Color {
	return t.Palette.Or(name, def)
}

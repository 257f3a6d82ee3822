package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// TabEntry is one tab of the bar.
type TabEntry struct {
	Label  string
	Symbol string
	Tint   string
	Active bool
}

// TabsModel represents the bottom tab bar.
type TabsModel struct {
	Tabs  []TabEntry
	Width int
	theme *Theme
}

// NewTabs creates a tab bar.
func NewTabs(theme *Theme, tabs ...TabEntry) TabsModel {
	return TabsModel{Tabs: tabs, theme: theme}
}

// View renders the tab bar. Tabs share the width evenly.
func (m TabsModel) View() string {
	if len(m.Tabs) == 0 {
		return ""
	}

	cell := 0
	if m.Width > 0 {
		cell = m.Width / len(m.Tabs)
	}

	tabs := make([]string, 0, len(m.Tabs))
	for _, tab := range m.Tabs {
		style := m.theme.Tab
		fallback := m.theme.InactiveTint
		if tab.Active {
			style = m.theme.ActiveTab
			fallback = m.theme.ActiveTint
		}
		style = style.Foreground(m.theme.Color(tab.Tint, fallback))
		if cell > 0 {
			style = style.Width(cell).Align(lipgloss.Center)
		}

		label := tab.Label
		if tab.Symbol != "" {
			label = tab.Symbol + " " + label
		}
		tabs = append(tabs, style.Render(label))
	}

	bar := m.theme.TabBar
	if m.Width > 0 {
		bar = bar.Width(m.Width)
	}
	return bar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// RoutesRenderer renders a navigation tree as a route table.
type RoutesRenderer struct {
	theme *Theme
}

// NewRoutesRenderer creates a route table renderer.
func NewRoutesRenderer(theme *Theme) *RoutesRenderer {
	return &RoutesRenderer{theme: theme}
}

// Render lists every tab with its routes in registration order. The
// initial route is marked and caller-input diagnostics follow the table.
func (r *RoutesRenderer) Render(tree *entity.NavigationTree) string {
	t := r.theme
	var b strings.Builder

	b.WriteString(t.Title.Render(fmt.Sprintf("%d tabs", len(tree.Tabs))))
	b.WriteString("\n")

	for i, tab := range tree.Tabs {
		icon := tab.Icon
		if icon == "" {
			icon = entity.DefaultTabIcon
		}
		fmt.Fprintf(&b, "\n%s %s %s\n",
			t.Highlight.Render(fmt.Sprintf("%d.", i+1)),
			t.Normal.Bold(true).Render(tab.Name),
			t.Subtle.Render(fmt.Sprintf("(%s %s)", tab.IconFamily, icon)),
		)

		for _, name := range tab.Stack.Names() {
			route, _ := tab.Stack.Lookup(name)

			marker := "  "
			if name == tab.Stack.Initial {
				marker = t.Highlight.Render("▸ ")
			}
			origin := "fallback"
			if route.Declared() {
				origin = "declared"
			}
			fmt.Fprintf(&b, "   %s%-20s %-8s %s\n",
				marker,
				name,
				route.Kind,
				t.Subtle.Render(origin),
			)
		}
	}

	if warnings := tree.Warnings(); len(warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%d diagnostics", len(warnings))))
		b.WriteString("\n")
		for _, w := range warnings {
			b.WriteString(t.Subtle.Render("  - " + w.Error()))
			b.WriteString("\n")
		}
	}

	return b.String()
}

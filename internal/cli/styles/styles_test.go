package styles

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/config"
)

func TestPalette_Resolve(t *testing.T) {
	p := NewPalette(map[string]string{"Brand": "#123456", "tomato": "#010101"})

	tests := []struct {
		name   string
		want   lipgloss.Color
		wantOK bool
	}{
		{"brand", "#123456", true},
		{"tomato", "#010101", true},
		{"Gray", "#808080", true},
		{"#ABCDEF", "#abcdef", true},
		{"208", "208", true},
		{"transparent", "", false},
		{"", "", false},
		{"not-a-color", "", false},
	}
	for _, tt := range tests {
		got, ok := p.Resolve(tt.name)
		assert.Equal(t, tt.wantOK, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	assert.Equal(t, lipgloss.Color("#ffffff"), p.Or("nope", "#ffffff"))
}

func TestNewTheme_Tints(t *testing.T) {
	theme := NewTheme(nil)
	assert.Equal(t, lipgloss.Color("#ff6347"), theme.ActiveTint)
	assert.Equal(t, lipgloss.Color("#808080"), theme.InactiveTint)

	cfg := config.DefaultConfig()
	cfg.Appearance.ActiveTint = "brand"
	cfg.Appearance.Palette = map[string]string{"brand": "#00ff00"}
	theme = NewTheme(cfg)
	assert.Equal(t, lipgloss.Color("#00ff00"), theme.ActiveTint)
}

func TestRenderList(t *testing.T) {
	theme := NewTheme(nil)
	out := RenderList(theme, []ListRow{
		{Title: "First", Symbol: "*", Navigable: true, Selected: true},
		{Title: "Second"},
	}, 40)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "▸ * First")
	assert.Contains(t, lines[0], "›")
	assert.Contains(t, lines[1], "Second")
	assert.NotContains(t, lines[1], "›")
}

func TestTabsModel_View(t *testing.T) {
	theme := NewTheme(nil)
	bar := NewTabs(theme,
		TabEntry{Label: "Home", Symbol: "H", Active: true},
		TabEntry{Label: "More"},
	)
	bar.Width = 40

	out := bar.View()
	assert.Contains(t, out, "H Home")
	assert.Contains(t, out, "More")

	assert.Empty(t, NewTabs(theme).View())
}

func TestSkeleton(t *testing.T) {
	out := Skeleton(NewTheme(nil), 8, 3)
	assert.Equal(t, 2, strings.Count(out, "\n\n"))
	assert.Contains(t, out, strings.Repeat("▀", 8))
}

func TestRoutesRenderer(t *testing.T) {
	raw := map[string]any{
		"tabs": []any{
			map[string]any{
				"name": "Home",
				"screens": []any{
					map[string]any{"name": "Start", "type": "list"},
					map[string]any{"name": "Start", "type": "dynamic"},
				},
			},
		},
	}
	schema := entity.DecodeSchema(raw)
	tree, err := usecase.NewNavigationTreeBuilder().Build(context.Background(), &schema)
	require.NoError(t, err)

	out := NewRoutesRenderer(NewTheme(nil)).Render(tree)
	assert.Contains(t, out, "1 tabs")
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, entity.DefaultTabIcon)
	assert.Contains(t, out, "▸ Start")
	assert.Contains(t, out, entity.RouteWebView)
	assert.Contains(t, out, "1 diagnostics")
}

func TestRoutesRenderer_NoDiagnostics(t *testing.T) {
	stack := entity.NewStackRoutes()
	stack.Register(entity.Route{Name: entity.RouteList, Kind: entity.ContentList})
	stack.Initial = entity.RouteList
	tree := &entity.NavigationTree{
		Tabs:        []entity.TabRoute{{Name: "Only", Icon: "home", Stack: stack}},
		Diagnostics: &multierror.Error{},
	}

	out := NewRoutesRenderer(NewTheme(nil)).Render(tree)
	assert.Contains(t, out, "▸ List")
	assert.NotContains(t, out, "diagnostics")
}

package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/domain/entity"
)

func TestResolveScreen_WebViewRoundTrip(t *testing.T) {
	r := NewContentResolver()

	got := r.ResolveScreen(entity.ScreenSpec{
		Name:   "Site",
		Type:   "webview",
		Title:  "T",
		URL:    "https://x",
		Header: true,
	}, entity.Theme{})

	assert.Equal(t, entity.ContentWebView, got.Kind)
	assert.Equal(t, "https://x", got.URL)
	assert.Equal(t, "T", got.Title)
	assert.NotNil(t, got.Config)
	assert.Empty(t, got.Config)
	assert.False(t, got.Dynamic)
}

func TestResolveScreen_InheritsThemeConfig(t *testing.T) {
	r := NewContentResolver()
	theme := entity.Theme{HeaderColor: "#111", Styles: entity.StyleConfig{"textStyle": "bold"}}

	got := r.ResolveScreen(entity.ScreenSpec{Name: "Home", Type: "dynamic", Content: "hi"}, theme)

	assert.Equal(t, "Home", got.Title)
	assert.Equal(t, "#111", got.Color)
	assert.Equal(t, entity.StyleConfig{"textStyle": "bold"}, got.Config)
	assert.Equal(t, "hi", got.Content)
}

func TestResolveScreen_ListWithoutItemsIsEmpty(t *testing.T) {
	r := NewContentResolver()

	got := r.ResolveScreen(entity.ScreenSpec{Name: "L", Type: "list"}, entity.Theme{})

	require.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}

func TestResolveScreen_UnknownTypeIsInert(t *testing.T) {
	r := NewContentResolver()

	got := r.ResolveScreen(entity.ScreenSpec{Name: "V", Type: "video", URL: "https://x", Content: "c"}, entity.Theme{})

	assert.Equal(t, entity.ContentUnknown, got.Kind)
	assert.Empty(t, got.URL)
	assert.Empty(t, got.Content)
	assert.Nil(t, got.Items)
}

func TestResolveRoute_TitleInheritsFromParent(t *testing.T) {
	r := NewContentResolver()
	parent := entity.ResolvedScreenParams{Title: "Parent", Color: "red"}

	req, ok := r.ResolveTarget(entity.Target{Type: "dynamic", Params: entity.TargetParams{Content: "body"}})
	require.True(t, ok)

	got := r.ResolveRoute(req, parent)
	assert.Equal(t, "Parent", got.Title)
	assert.Equal(t, "red", got.Color)
	assert.True(t, got.Dynamic)
	assert.Equal(t, "body", got.Content)
}

func TestResolveRoute_OwnTitleWins(t *testing.T) {
	r := NewContentResolver()
	parent := entity.ResolvedScreenParams{Title: "Parent"}

	req, ok := r.ResolveTarget(entity.Target{Type: "list", Params: entity.TargetParams{Title: "Child"}})
	require.True(t, ok)

	got := r.ResolveRoute(req, parent)
	assert.Equal(t, "Child", got.Title)
}

func TestResolveRoute_ConfigReplacesNotMerges(t *testing.T) {
	r := NewContentResolver()
	parent := entity.ResolvedScreenParams{
		Config: entity.StyleConfig{"iconeColor": "red", "textStyle": "X"},
	}

	req, ok := r.ResolveTarget(entity.Target{
		Type:   "list",
		Params: entity.TargetParams{Config: entity.StyleConfig{"iconeColor": "blue"}},
	})
	require.True(t, ok)

	got := r.ResolveRoute(req, parent)
	assert.Equal(t, entity.StyleConfig{"iconeColor": "blue"}, got.Config)
	assert.NotContains(t, got.Config, "textStyle")
}

func TestResolveRoute_EmptyConfigReplaces(t *testing.T) {
	r := NewContentResolver()
	parent := entity.ResolvedScreenParams{Config: entity.StyleConfig{"iconeColor": "red"}}

	req, ok := r.ResolveTarget(entity.Target{Type: "list", Params: entity.TargetParams{Config: entity.StyleConfig{}}})
	require.True(t, ok)

	got := r.ResolveRoute(req, parent)
	assert.NotNil(t, got.Config)
	assert.Empty(t, got.Config)
}

func TestResolveRoute_AbsentConfigInherits(t *testing.T) {
	r := NewContentResolver()
	parent := entity.ResolvedScreenParams{Config: entity.StyleConfig{"iconeColor": "red"}}

	req, ok := r.ResolveTarget(entity.Target{Type: "webview", Params: entity.TargetParams{URL: "https://x"}})
	require.True(t, ok)

	got := r.ResolveRoute(req, parent)
	assert.Equal(t, entity.StyleConfig{"iconeColor": "red"}, got.Config)

	got.Config["iconeColor"] = "green"
	assert.Equal(t, "red", parent.Config["iconeColor"])
}

func TestResolveTarget_RequestShape(t *testing.T) {
	r := NewContentResolver()

	tests := []struct {
		name      string
		target    entity.Target
		wantRoute string
		wantJSON  string
	}{
		{
			name:      "webview",
			target:    entity.Target{Type: "webview", Params: entity.TargetParams{URL: "https://x", Content: "ignored"}},
			wantRoute: entity.RouteWebView,
			wantJSON:  `{"list": true, "url": "https://x"}`,
		},
		{
			name:      "dynamic",
			target:    entity.Target{Type: "dynamic", Params: entity.TargetParams{Content: "hello", Title: "T"}},
			wantRoute: entity.RouteDynamic,
			wantJSON:  `{"list": true, "content": "hello", "title": "T"}`,
		},
		{
			name:      "list without items",
			target:    entity.Target{Type: "list"},
			wantRoute: entity.RouteList,
			wantJSON:  `{"list": true, "items": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, ok := r.ResolveTarget(tt.target)
			require.True(t, ok)
			assert.Equal(t, tt.wantRoute, req.Route)

			data, err := json.Marshal(req.Params)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(data))
		})
	}
}

func TestResolveTarget_UnknownType(t *testing.T) {
	r := NewContentResolver()

	_, ok := r.ResolveTarget(entity.Target{Type: "video"})
	assert.False(t, ok)
}

package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/port/mocks"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
)

func listParams(items []entity.ListItem, cfg entity.StyleConfig) entity.ResolvedScreenParams {
	return entity.ResolvedScreenParams{Kind: entity.ContentList, Items: items, Config: cfg, Title: "L", Header: true}
}

func TestList_EmptyState(t *testing.T) {
	for _, items := range [][]entity.ListItem{nil, {}} {
		c := NewListController("s", entity.RouteList, listParams(items, nil), mocks.NewMockNavigator(t), usecase.NewContentResolver(), nil)

		assert.True(t, c.IsEmpty())
		assert.NotNil(t, c.Items())
		_, ok := c.Select(context.Background(), 0)
		assert.False(t, ok)
	}
}

func TestList_ItemWithoutTargetIsInert(t *testing.T) {
	nav := mocks.NewMockNavigator(t)
	c := NewListController("s", entity.RouteList, listParams([]entity.ListItem{{Title: "leaf"}}, nil), nav, usecase.NewContentResolver(), nil)

	for range 3 {
		_, ok := c.Select(context.Background(), 0)
		assert.False(t, ok)
		require.NoError(t, c.Open(context.Background(), 0))
	}
	nav.AssertNotCalled(t, "Navigate", mock.Anything, mock.Anything)
	assert.False(t, c.Navigable(0))
}

func TestList_SelectBuildsFallbackRequest(t *testing.T) {
	nav := mocks.NewMockNavigator(t)
	items := []entity.ListItem{
		{Title: "web", Target: &entity.Target{Type: "webview", Params: entity.TargetParams{URL: "https://x"}}},
		{Title: "bad", Target: &entity.Target{Type: "video"}},
	}
	c := NewListController("s", entity.RouteList, listParams(items, nil), nav, usecase.NewContentResolver(), nil)

	nav.EXPECT().Navigate(mock.Anything, mock.MatchedBy(func(req entity.NavigationRequest) bool {
		return req.Route == entity.RouteWebView && req.Params.List && req.Params.URL == "https://x"
	})).Return(nil).Once()

	require.NoError(t, c.Open(context.Background(), 0))
	require.NoError(t, c.Open(context.Background(), 1))
	assert.True(t, c.Navigable(0))
	assert.False(t, c.Navigable(1))
}

func TestList_ItemGlyphIgnoresScreenIconColor(t *testing.T) {
	ctrl := gomock.NewController(t)
	fa := mocks.NewMockIconProvider(ctrl)
	fa.EXPECT().Family().Return(entity.IconFamilyFontAwesome).AnyTimes()
	fa.EXPECT().Glyph("globe", 2, DefaultItemColor).Return(port.Glyph{Name: "globe", Color: DefaultItemColor}, true)

	items := []entity.ListItem{{Title: "web", Icon: "globe", IconType: "FontAwesome"}}
	c := NewListController("s", entity.RouteList, listParams(items, entity.StyleConfig{"iconeColor": "red"}), mocks.NewMockNavigator(t),
		usecase.NewContentResolver(), usecase.NewIconDispatcher(fa))

	g, ok := c.ItemGlyph(0, 2)
	require.True(t, ok)
	assert.Equal(t, DefaultItemColor, g.Color)
	assert.Equal(t, "red", c.IndicatorColor())

	_, ok = c.ItemGlyph(5, 2)
	assert.False(t, ok)
}

func TestList_IndicatorColorDefault(t *testing.T) {
	c := NewListController("s", entity.RouteList, listParams(nil, nil), mocks.NewMockNavigator(t), usecase.NewContentResolver(), nil)
	c.SetDefaultColors("", "gray")

	assert.Equal(t, "gray", c.IndicatorColor())
}

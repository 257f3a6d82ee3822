package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/domain/entity"
)

func TestBuild_NoTabs(t *testing.T) {
	b := NewNavigationTreeBuilder()

	for _, schema := range []*entity.Schema{nil, {}, {Tabs: []entity.TabSpec{}}} {
		tree, err := b.Build(context.Background(), schema)
		assert.ErrorIs(t, err, entity.ErrNoTabs)
		assert.Nil(t, tree)
	}
}

func TestBuild_RegistersFallbacksThenDeclaredScreens(t *testing.T) {
	b := NewNavigationTreeBuilder()
	schema := &entity.Schema{Tabs: []entity.TabSpec{
		{Name: "Home", Icon: "md-home", IconFamily: "Ionicons", Screens: []entity.ScreenSpec{
			{Name: "Start", Type: "list"},
			{Name: "About", Type: "dynamic", Content: "x"},
		}},
		{Name: "News", IconFamily: "MaterialIcons"},
	}}

	tree, err := b.Build(context.Background(), schema)
	require.NoError(t, err)
	require.Len(t, tree.Tabs, 2)
	assert.Empty(t, tree.Warnings())

	home := tree.Tabs[0]
	assert.Equal(t, "Home", home.Name)
	assert.Equal(t, entity.IconFamilyIonicons, home.IconFamily)
	assert.Equal(t, []string{"List", "WebView", "Dynamic", "Start", "About"}, home.Stack.Names())
	assert.Equal(t, "Start", home.Stack.Initial)

	about, ok := home.Stack.Lookup("About")
	require.True(t, ok)
	require.True(t, about.Declared())
	assert.Equal(t, "x", about.Initial.Content)

	news := tree.Tabs[1]
	assert.Equal(t, entity.IconFamilyMaterialIcons, news.IconFamily)
	assert.Equal(t, entity.RouteList, news.Stack.Initial)
}

func TestBuild_DuplicateScreenLastWins(t *testing.T) {
	b := NewNavigationTreeBuilder()
	schema := &entity.Schema{Tabs: []entity.TabSpec{
		{Name: "Home", Screens: []entity.ScreenSpec{
			{Name: "Start", Type: "list", Title: "first"},
			{Name: "Start", Type: "dynamic", Title: "second"},
			{Name: "List", Type: "webview", URL: "https://x"},
		}},
	}}

	tree, err := b.Build(context.Background(), schema)
	require.NoError(t, err)

	start, ok := tree.Tabs[0].Stack.Lookup("Start")
	require.True(t, ok)
	assert.Equal(t, "second", start.Initial.Title)
	assert.Equal(t, entity.ContentDynamic, start.Kind)

	list, ok := tree.Tabs[0].Stack.Lookup(entity.RouteList)
	require.True(t, ok)
	assert.Equal(t, entity.ContentWebView, list.Kind)

	require.Len(t, tree.Warnings(), 2)
	var dup *entity.DuplicateRouteError
	require.True(t, errors.As(tree.Warnings()[0], &dup))
	assert.Equal(t, "Home", dup.Tab)
	assert.Equal(t, "Start", dup.Name)
}

func TestBuild_DuplicateTabLastWins(t *testing.T) {
	b := NewNavigationTreeBuilder()
	schema := &entity.Schema{Tabs: []entity.TabSpec{
		{Name: "A", Icon: "first"},
		{Name: "B"},
		{Name: "A", Icon: "second"},
	}}

	tree, err := b.Build(context.Background(), schema)
	require.NoError(t, err)
	require.Len(t, tree.Tabs, 2)
	assert.Equal(t, "B", tree.Tabs[0].Name)
	assert.Equal(t, "A", tree.Tabs[1].Name)
	assert.Equal(t, "second", tree.Tabs[1].Icon)
	require.Len(t, tree.Warnings(), 1)
}

func TestBuild_SkipsUnnamedScreens(t *testing.T) {
	b := NewNavigationTreeBuilder()
	schema := &entity.Schema{Tabs: []entity.TabSpec{
		{Name: "A", Screens: []entity.ScreenSpec{{Type: "list"}, {Name: "Real", Type: "list"}}},
	}}

	tree, err := b.Build(context.Background(), schema)
	require.NoError(t, err)
	assert.Equal(t, "Real", tree.Tabs[0].Stack.Initial)
	assert.Equal(t, 4, tree.Tabs[0].Stack.Len())
}

func TestBuild_KeepsScreensByValue(t *testing.T) {
	b := NewNavigationTreeBuilder()
	schema := &entity.Schema{Tabs: []entity.TabSpec{
		{Name: "A", Screens: []entity.ScreenSpec{{Name: "S", Type: "dynamic", Content: "orig"}}},
	}}

	tree, err := b.Build(context.Background(), schema)
	require.NoError(t, err)

	schema.Tabs[0].Screens[0].Content = "changed"
	r, _ := tree.Tabs[0].Stack.Lookup("S")
	assert.Equal(t, "orig", r.Initial.Content)
}

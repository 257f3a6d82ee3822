package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, doc string) Schema {
	t.Helper()
	var raw any
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))
	return DecodeSchema(raw)
}

func TestDecodeSchema_MissingTabs(t *testing.T) {
	schema := decodeJSON(t, `{"config": {"logo": "https://x/logo.png"}}`)

	assert.False(t, schema.HasTabs())
	assert.Equal(t, "https://x/logo.png", schema.Theme.LogoURL)
}

func TestDecodeSchema_NonObjectRoot(t *testing.T) {
	assert.False(t, (&Schema{}).HasTabs())
	schema := DecodeSchema([]any{"nope"})
	assert.Empty(t, schema.Tabs)
	schema = DecodeSchema(nil)
	assert.Empty(t, schema.Tabs)
}

func TestDecodeSchema_ThemeAlias(t *testing.T) {
	schema := decodeJSON(t, `{"theme": {"headerColor": "#123456", "styles": {"textStyle": "bold"}}}`)

	assert.Equal(t, "#123456", schema.Theme.HeaderColor)
	assert.Equal(t, StyleConfig{"textStyle": "bold"}, schema.Theme.Styles)
}

func TestDecodeSchema_FullDocument(t *testing.T) {
	schema := decodeJSON(t, `{
		"tabs": [
			{"name": "Home", "icon": "md-home", "iconFamily": "Ionicons", "screens": [
				{"name": "Start", "title": "Welcome", "type": "list", "header": false,
				 "config": {"iconeColor": "red"},
				 "items": [
					{"title": "Site", "icon": "globe", "iconType": "FontAwesome",
					 "target": {"type": "webview", "params": {"url": "https://x"}}},
					{"title": "Leaf"},
					"garbage"
				 ]}
			]},
			42
		]
	}`)

	require.Len(t, schema.Tabs, 1)
	tab := schema.Tabs[0]
	assert.Equal(t, "Home", tab.Name)
	assert.Equal(t, "md-home", tab.Icon)
	require.Len(t, tab.Screens, 1)

	screen := tab.Screens[0]
	assert.Equal(t, ContentList, screen.Kind())
	assert.Equal(t, "Welcome", screen.Title)
	assert.False(t, screen.Header)
	assert.Equal(t, StyleConfig{"iconeColor": "red"}, screen.Config)
	require.Len(t, screen.Items, 2)
	require.NotNil(t, screen.Items[0].Target)
	assert.Equal(t, ContentWebView, screen.Items[0].Target.Kind())
	assert.Equal(t, "https://x", screen.Items[0].Target.Params.URL)
	assert.Nil(t, screen.Items[1].Target)
}

func TestDecodeSchema_TargetWithoutParamsIsInert(t *testing.T) {
	schema := decodeJSON(t, `{"tabs": [{"name": "A", "screens": [{"name": "S", "type": "list", "items": [
		{"title": "no params", "target": {"type": "dynamic"}},
		{"title": "null params", "target": {"type": "list", "params": null}},
		{"title": "scalar params", "target": {"type": "webview", "params": "https://x"}},
		{"title": "empty params", "target": {"type": "dynamic", "params": {}}}
	]}]}]}`)

	items := schema.Tabs[0].Screens[0].Items
	require.Len(t, items, 4)
	assert.Nil(t, items[0].Target)
	assert.Nil(t, items[1].Target)
	assert.Nil(t, items[2].Target)
	require.NotNil(t, items[3].Target)
	assert.Equal(t, ContentDynamic, items[3].Target.Kind())
}

func TestDecodeSchema_HeaderDefaultsToShown(t *testing.T) {
	schema := decodeJSON(t, `{"tabs": [{"name": "A", "screens": [{"name": "S", "type": "dynamic"}]}]}`)

	assert.True(t, schema.Tabs[0].Screens[0].Header)
}

func TestDecodeSchema_NestedParamsShape(t *testing.T) {
	schema := decodeJSON(t, `{"tabs": [{"name": "A", "screens": [
		{"name": "S", "type": "list", "params": {"title": "Nested", "items": [{"title": "one"}]}}
	]}]}`)

	screen := schema.Tabs[0].Screens[0]
	assert.Equal(t, "Nested", screen.Title)
	require.Len(t, screen.Items, 1)
	assert.Equal(t, "one", screen.Items[0].Title)
}

func TestDecodeSchema_ItemsAbsentVersusEmpty(t *testing.T) {
	schema := decodeJSON(t, `{"tabs": [{"name": "A", "screens": [
		{"name": "absent", "type": "list"},
		{"name": "empty", "type": "list", "items": []}
	]}]}`)

	assert.Nil(t, schema.Tabs[0].Screens[0].Items)
	assert.NotNil(t, schema.Tabs[0].Screens[1].Items)
	assert.Empty(t, schema.Tabs[0].Screens[1].Items)
}

func TestDecodeSchema_ConfigPresenceRules(t *testing.T) {
	schema := decodeJSON(t, `{"tabs": [{"name": "A", "screens": [
		{"name": "null", "config": null},
		{"name": "empty", "config": {}},
		{"name": "scalar", "config": "red"}
	]}]}`)

	screens := schema.Tabs[0].Screens
	assert.False(t, screens[0].Config.Present())
	assert.True(t, screens[1].Config.Present())
	assert.Empty(t, screens[1].Config)
	assert.False(t, screens[2].Config.Present())
}

func TestDecodeSchema_DoesNotAliasInput(t *testing.T) {
	var raw any
	require.NoError(t, json.Unmarshal([]byte(`{"tabs": [{"name": "A", "screens": [{"name": "S", "config": {"k": "v"}}]}]}`), &raw))

	schema := DecodeSchema(raw)
	schema.Tabs[0].Screens[0].Config["k"] = "changed"

	cfg := raw.(map[string]any)["tabs"].([]any)[0].(map[string]any)["screens"].([]any)[0].(map[string]any)["config"].(map[string]any)
	assert.Equal(t, "v", cfg["k"])
}

package entity

// DecodeSchema interprets a generic decoded document (JSON or YAML) into a
// Schema. Malformed fields degrade to their zero value; nothing here fails.
func DecodeSchema(raw any) Schema {
	root, _ := raw.(map[string]any)
	if root == nil {
		return Schema{}
	}

	var schema Schema
	for _, t := range asSlice(root["tabs"]) {
		tab, ok := t.(map[string]any)
		if !ok {
			continue
		}
		schema.Tabs = append(schema.Tabs, decodeTab(tab))
	}

	themeRaw, ok := root["config"].(map[string]any)
	if !ok {
		themeRaw, _ = root["theme"].(map[string]any)
	}
	schema.Theme = decodeTheme(themeRaw)

	return schema
}

func decodeTheme(m map[string]any) Theme {
	if m == nil {
		return Theme{}
	}
	return Theme{
		LogoURL:     firstString(m, "logo", "logoUrl", "logoURL"),
		HeaderColor: firstString(m, "headerColor", "primaryColor", "color"),
		Styles:      asStyle(m["styles"]),
		Raw:         m,
	}
}

func decodeTab(m map[string]any) TabSpec {
	tab := TabSpec{
		Name:       asString(m["name"]),
		Icon:       asString(m["icon"]),
		IconFamily: firstString(m, "iconFamily", "iconType"),
	}
	for _, s := range asSlice(m["screens"]) {
		screen, ok := s.(map[string]any)
		if !ok {
			continue
		}
		tab.Screens = append(tab.Screens, decodeScreen(screen))
	}
	return tab
}

// decodeScreen accepts the kind fields either on the screen itself or nested
// under "params", the shape older documents use.
func decodeScreen(m map[string]any) ScreenSpec {
	params := decodeTargetParams(m)
	if nested, ok := m["params"].(map[string]any); ok {
		params = overlayParams(params, decodeTargetParams(nested))
	}

	header := true
	if v, ok := m["header"].(bool); ok {
		header = v
	}

	return ScreenSpec{
		Name:    asString(m["name"]),
		Title:   params.Title,
		Type:    asString(m["type"]),
		Header:  header,
		Items:   params.Items,
		URL:     params.URL,
		Content: params.Content,
		Color:   params.Color,
		Config:  params.Config,
	}
}

// overlayParams fills fields absent from base with those of extra.
func overlayParams(base, extra TargetParams) TargetParams {
	if base.Title == "" {
		base.Title = extra.Title
	}
	if base.Color == "" {
		base.Color = extra.Color
	}
	if base.Config == nil {
		base.Config = extra.Config
	}
	if base.Items == nil {
		base.Items = extra.Items
	}
	if base.URL == "" {
		base.URL = extra.URL
	}
	if base.Content == "" {
		base.Content = extra.Content
	}
	return base
}

func decodeTargetParams(m map[string]any) TargetParams {
	return TargetParams{
		Title:   asString(m["title"]),
		Color:   asString(m["color"]),
		Config:  asStyle(m["config"]),
		Items:   decodeItems(m["items"]),
		URL:     asString(m["url"]),
		Content: asString(m["content"]),
	}
}

// decodeItems keeps the absent/empty distinction: nil when the key is
// missing, an empty slice when it is present.
func decodeItems(v any) []ListItem {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]ListItem, 0, len(raw))
	for _, it := range raw {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, decodeItem(m))
	}
	return items
}

func decodeItem(m map[string]any) ListItem {
	item := ListItem{
		Title:    asString(m["title"]),
		Icon:     asString(m["icon"]),
		IconType: firstString(m, "iconType", "iconFamily"),
	}
	// A target without a params object leaves the item inert.
	if t, ok := m["target"].(map[string]any); ok {
		if p, ok := t["params"].(map[string]any); ok {
			item.Target = &Target{Type: asString(t["type"]), Params: decodeTargetParams(p)}
		}
	}
	return item
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := asString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// asStyle treats null and non-object values as absent.
func asStyle(v any) StyleConfig {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil
	}
	return StyleConfig(m).Clone()
}

package entity

// Schema is the root navigation document. It is decoded once and never
// mutated afterwards.
type Schema struct {
	Tabs  []TabSpec `json:"tabs,omitempty" jsonschema:"description=Tabs in display order"`
	Theme Theme     `json:"config,omitempty" jsonschema:"description=Theme and style record"`
}

// HasTabs reports whether the document describes anything navigable.
func (s *Schema) HasTabs() bool {
	return s != nil && len(s.Tabs) > 0
}

// Theme is the document-wide styling record.
type Theme struct {
	LogoURL     string      `json:"logo,omitempty"`
	HeaderColor string      `json:"headerColor,omitempty"`
	Styles      StyleConfig `json:"styles,omitempty" jsonschema:"type=object"`
	// Raw keeps every key of the record, known or not.
	Raw map[string]any `json:"-"`
}

// TabSpec declares one tab and the screens of its stack.
type TabSpec struct {
	Name       string       `json:"name" jsonschema:"required"`
	Icon       string       `json:"icon,omitempty"`
	IconFamily string       `json:"iconFamily,omitempty" jsonschema:"enum=Ionicons,enum=MaterialIcons,enum=FontAwesome,enum=MaterialCommunityIcons"`
	Screens    []ScreenSpec `json:"screens,omitempty"`
}

// ScreenSpec declares one named route of a tab stack.
type ScreenSpec struct {
	Name    string      `json:"name" jsonschema:"required"`
	Title   string      `json:"title,omitempty"`
	Type    string      `json:"type,omitempty" jsonschema:"enum=list,enum=webview,enum=dynamic"`
	Header  bool        `json:"header" jsonschema:"default=true"`
	Items   []ListItem  `json:"items,omitempty"`
	URL     string      `json:"url,omitempty"`
	Content string      `json:"content,omitempty"`
	Color   string      `json:"color,omitempty"`
	Config  StyleConfig `json:"config,omitempty" jsonschema:"type=object"`
}

// Kind returns the screen's content kind.
func (s ScreenSpec) Kind() ContentKind {
	return ParseContentKind(s.Type)
}

// ListItem is one row of a list screen.
type ListItem struct {
	Title    string  `json:"title,omitempty"`
	Icon     string  `json:"icon,omitempty"`
	IconType string  `json:"iconType,omitempty"`
	Target   *Target `json:"target,omitempty"`
}

// Target is the recursive navigation point of a list item.
type Target struct {
	Type   string       `json:"type" jsonschema:"enum=list,enum=webview,enum=dynamic"`
	Params TargetParams `json:"params,omitempty"`
}

// Kind returns the target's content kind.
func (t Target) Kind() ContentKind {
	return ParseContentKind(t.Type)
}

// TargetParams mirrors the kind fields of ScreenSpec plus the inheritable
// title, color and config.
type TargetParams struct {
	Title   string      `json:"title,omitempty"`
	Color   string      `json:"color,omitempty"`
	Config  StyleConfig `json:"config,omitempty" jsonschema:"type=object"`
	Items   []ListItem  `json:"items,omitempty"`
	URL     string      `json:"url,omitempty"`
	Content string      `json:"content,omitempty"`
}

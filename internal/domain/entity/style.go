package entity

import "maps"

// StyleConfig is the opaque per-node style record. A nil StyleConfig means
// the node did not carry one; a non-nil empty one was declared as {}.
type StyleConfig map[string]any

// Present reports whether the record was declared.
func (c StyleConfig) Present() bool {
	return c != nil
}

// Clone returns a shallow copy, preserving presence.
func (c StyleConfig) Clone() StyleConfig {
	if c == nil {
		return nil
	}
	out := make(StyleConfig, len(c))
	maps.Copy(out, c)
	return out
}

// String returns a string value for key.
func (c StyleConfig) String(key string) (string, bool) {
	v, ok := c[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// IconColor returns the navigation indicator tint. Documents in the wild use
// the "iconeColor" spelling; "iconColor" is accepted too.
func (c StyleConfig) IconColor() (string, bool) {
	if v, ok := c.String("iconeColor"); ok {
		return v, true
	}
	return c.String("iconColor")
}

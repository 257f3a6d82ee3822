package usecase

import (
	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// IconDispatcher selects the glyph provider for an icon family.
type IconDispatcher struct {
	providers map[entity.IconFamily]port.IconProvider
}

// NewIconDispatcher indexes providers by the family they serve. A later
// provider for the same family replaces an earlier one.
func NewIconDispatcher(providers ...port.IconProvider) *IconDispatcher {
	d := &IconDispatcher{providers: make(map[entity.IconFamily]port.IconProvider, len(providers))}
	for _, p := range providers {
		if p == nil {
			continue
		}
		d.providers[p.Family()] = p
	}
	return d
}

// Resolve returns the glyph for (family, glyph). Unknown families, missing
// providers and unknown glyph names all yield false.
func (d *IconDispatcher) Resolve(family entity.IconFamily, glyph string, size int, color string) (port.Glyph, bool) {
	if glyph == "" {
		return port.Glyph{}, false
	}

	switch family {
	case entity.IconFamilyIonicons,
		entity.IconFamilyMaterialIcons,
		entity.IconFamilyFontAwesome,
		entity.IconFamilyMaterialCommunityIcons:
		p, ok := d.providers[family]
		if !ok {
			return port.Glyph{}, false
		}
		return p.Glyph(glyph, size, color)
	case entity.IconFamilyUnknown:
		return port.Glyph{}, false
	default:
		return port.Glyph{}, false
	}
}

// ResolveNamed parses a document family name and resolves the glyph.
func (d *IconDispatcher) ResolveNamed(family, glyph string, size int, color string) (port.Glyph, bool) {
	return d.Resolve(entity.ParseIconFamily(family), glyph, size, color)
}

// TabGlyph resolves a tab icon, falling back to DefaultTabIcon when the tab
// does not name one.
func (d *IconDispatcher) TabGlyph(tab entity.TabRoute, size int, color string) (port.Glyph, bool) {
	name := tab.Icon
	if name == "" {
		name = entity.DefaultTabIcon
	}
	return d.Resolve(tab.IconFamily, name, size, color)
}

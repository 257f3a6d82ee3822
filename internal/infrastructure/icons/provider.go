// Package icons maps document glyph names to Nerd Font code points, one
// provider per icon family.
package icons

import (
	"slices"
	"strings"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// Provider serves the glyphs of one family.
type Provider struct {
	family    entity.IconFamily
	glyphs    map[string]string
	normalize func(string) string
}

var _ port.IconProvider = (*Provider)(nil)

// Family implements port.IconProvider.
func (p *Provider) Family() entity.IconFamily {
	return p.family
}

// Glyph implements port.IconProvider. Unknown names yield false.
func (p *Provider) Glyph(name string, size int, color string) (port.Glyph, bool) {
	symbol, ok := p.glyphs[p.normalize(name)]
	if !ok {
		return port.Glyph{}, false
	}
	return port.Glyph{
		Family: p.family,
		Name:   name,
		Symbol: symbol,
		Size:   size,
		Color:  color,
	}, true
}

// Names returns the normalized glyph names the provider knows, sorted.
func (p *Provider) Names() []string {
	out := make([]string, 0, len(p.glyphs))
	for name := range p.glyphs {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// NewIonicons serves Ionicons names. Platform prefixes (md-, ios-, logo-)
// and style suffixes (-outline, -sharp) are ignored.
func NewIonicons() *Provider {
	return &Provider{family: entity.IconFamilyIonicons, glyphs: ioniconsGlyphs, normalize: normalizeIonicon}
}

// NewMaterialIcons serves MaterialIcons names.
func NewMaterialIcons() *Provider {
	return &Provider{family: entity.IconFamilyMaterialIcons, glyphs: materialGlyphs, normalize: normalizeName}
}

// NewFontAwesome serves FontAwesome names.
func NewFontAwesome() *Provider {
	return &Provider{family: entity.IconFamilyFontAwesome, glyphs: fontAwesomeGlyphs, normalize: normalizeFontAwesome}
}

// NewMaterialCommunityIcons serves MaterialCommunityIcons names.
func NewMaterialCommunityIcons() *Provider {
	return &Provider{family: entity.IconFamilyMaterialCommunityIcons, glyphs: communityGlyphs, normalize: normalizeName}
}

// Providers returns one provider per known family, in family order.
func Providers() []*Provider {
	return []*Provider{
		NewIonicons(),
		NewMaterialIcons(),
		NewFontAwesome(),
		NewMaterialCommunityIcons(),
	}
}

// All returns Providers as port.IconProvider values.
func All() []port.IconProvider {
	providers := Providers()
	out := make([]port.IconProvider, len(providers))
	for i, p := range providers {
		out[i] = p
	}
	return out
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

func normalizeIonicon(name string) string {
	n := normalizeName(name)
	for _, prefix := range []string{"md-", "ios-", "logo-"} {
		if strings.HasPrefix(n, prefix) {
			n = strings.TrimPrefix(n, prefix)
			break
		}
	}
	for _, suffix := range []string{"-outline", "-sharp"} {
		n = strings.TrimSuffix(n, suffix)
	}
	return n
}

func normalizeFontAwesome(name string) string {
	return strings.TrimPrefix(normalizeName(name), "fa-")
}

package port

import "github.com/bnema/tabshell/internal/domain/entity"

// Glyph is a renderable icon.
type Glyph struct {
	Family entity.IconFamily
	Name   string
	Symbol string
	Size   int
	Color  string
}

// IconProvider looks up glyphs of a single family.
//
//go:generate mockgen -destination=mocks/mock_icon_provider.go -package=mocks . IconProvider
type IconProvider interface {
	Family() entity.IconFamily
	Glyph(name string, size int, color string) (Glyph, bool)
}

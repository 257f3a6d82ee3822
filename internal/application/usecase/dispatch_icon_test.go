package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/port/mocks"
	"github.com/bnema/tabshell/internal/domain/entity"
)

func newProvider(ctrl *gomock.Controller, family entity.IconFamily) *mocks.MockIconProvider {
	p := mocks.NewMockIconProvider(ctrl)
	p.EXPECT().Family().Return(family).AnyTimes()
	return p
}

func TestIconDispatcher_SelectsProviderByFamily(t *testing.T) {
	ctrl := gomock.NewController(t)
	ion := newProvider(ctrl, entity.IconFamilyIonicons)
	fa := newProvider(ctrl, entity.IconFamilyFontAwesome)

	want := port.Glyph{Family: entity.IconFamilyFontAwesome, Name: "globe", Symbol: "x", Size: 24, Color: "black"}
	fa.EXPECT().Glyph("globe", 24, "black").Return(want, true)

	d := NewIconDispatcher(ion, fa)
	got, ok := d.Resolve(entity.IconFamilyFontAwesome, "globe", 24, "black")

	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestIconDispatcher_UnknownFamilyYieldsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	ion := newProvider(ctrl, entity.IconFamilyIonicons)

	d := NewIconDispatcher(ion)

	_, ok := d.Resolve(entity.IconFamilyUnknown, "md-home", 24, "black")
	assert.False(t, ok)

	_, ok = d.ResolveNamed("Feather", "home", 24, "black")
	assert.False(t, ok)
}

func TestIconDispatcher_MissingProviderYieldsNothing(t *testing.T) {
	d := NewIconDispatcher()

	_, ok := d.Resolve(entity.IconFamilyMaterialIcons, "home", 24, "black")
	assert.False(t, ok)
}

func TestIconDispatcher_EmptyGlyphNameSkipsProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	ion := newProvider(ctrl, entity.IconFamilyIonicons)

	d := NewIconDispatcher(ion)
	_, ok := d.Resolve(entity.IconFamilyIonicons, "", 24, "black")
	assert.False(t, ok)
}

func TestIconDispatcher_EmptyFamilyNameIsIonicons(t *testing.T) {
	ctrl := gomock.NewController(t)
	ion := newProvider(ctrl, entity.IconFamilyIonicons)
	ion.EXPECT().Glyph("md-home", 16, "gray").Return(port.Glyph{Name: "md-home"}, true)

	d := NewIconDispatcher(ion)
	_, ok := d.ResolveNamed("", "md-home", 16, "gray")
	assert.True(t, ok)
}

func TestIconDispatcher_TabGlyphDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	ion := newProvider(ctrl, entity.IconFamilyIonicons)
	ion.EXPECT().Glyph(entity.DefaultTabIcon, 16, "tomato").Return(port.Glyph{Name: entity.DefaultTabIcon}, true)

	d := NewIconDispatcher(ion)
	g, ok := d.TabGlyph(entity.TabRoute{Name: "Home", IconFamily: entity.IconFamilyIonicons}, 16, "tomato")

	assert.True(t, ok)
	assert.Equal(t, entity.DefaultTabIcon, g.Name)
}

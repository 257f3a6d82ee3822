package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/icons"
)

type fakeSwitcher struct {
	active   int
	switched []int
	err      error
}

func (s *fakeSwitcher) SwitchTab(_ context.Context, index int) error {
	if s.err != nil {
		return s.err
	}
	s.active = index
	s.switched = append(s.switched, index)
	return nil
}

func (s *fakeSwitcher) ActiveTab() int { return s.active }

func tabTree() *entity.NavigationTree {
	return &entity.NavigationTree{Tabs: []entity.TabRoute{
		{Name: "Home", Icon: "home", IconFamily: entity.IconFamilyIonicons},
		{Name: "Docs", Icon: "no-such-glyph", IconFamily: entity.IconFamilyIonicons},
		{Name: "More", IconFamily: entity.IconFamilyIonicons},
	}}
}

func TestTabController_Items(t *testing.T) {
	sw := &fakeSwitcher{}
	tc := NewTabController(context.Background(), tabTree(), usecase.NewIconDispatcher(icons.All()...), sw, "tomato", "gray", 24)

	items := tc.Items()
	require.Len(t, items, 3)

	assert.Equal(t, "Home", items[0].Label)
	assert.True(t, items[0].Active)
	assert.Equal(t, "tomato", items[0].Tint)
	assert.True(t, items[0].HasIcon)
	assert.Equal(t, "tomato", items[0].Glyph.Color)

	assert.False(t, items[1].Active)
	assert.Equal(t, "gray", items[1].Tint)
	assert.False(t, items[1].HasIcon, "unknown glyph renders the label alone")

	// A tab without an icon falls back to the alert glyph.
	assert.True(t, items[2].HasIcon)
	assert.Equal(t, entity.DefaultTabIcon, items[2].Glyph.Name)
}

func TestTabController_NextPrevWrap(t *testing.T) {
	sw := &fakeSwitcher{}
	tc := NewTabController(context.Background(), tabTree(), nil, sw, "tomato", "gray", 24)

	var shown []int
	tc.SetOnTabSwitch(func(i int) { shown = append(shown, i) })

	tc.Prev(context.Background())
	assert.Equal(t, 2, sw.active)

	tc.Next(context.Background())
	assert.Equal(t, 0, sw.active)

	tc.Next(context.Background())
	assert.Equal(t, 1, sw.active)

	assert.Equal(t, []int{2, 0, 1}, shown)
	assert.False(t, tc.Items()[0].HasIcon, "no dispatcher, no glyphs")
}

func TestTabController_SwitchToActiveIsNoop(t *testing.T) {
	sw := &fakeSwitcher{active: 1}
	tc := NewTabController(context.Background(), tabTree(), nil, sw, "tomato", "gray", 24)

	called := false
	tc.SetOnTabSwitch(func(int) { called = true })
	tc.Switch(context.Background(), 1)

	assert.Empty(t, sw.switched)
	assert.False(t, called)
}

func TestTabController_SwitchErrorSkipsCallback(t *testing.T) {
	sw := &fakeSwitcher{err: errors.New("boom")}
	tc := NewTabController(context.Background(), tabTree(), nil, sw, "tomato", "gray", 24)

	called := false
	tc.SetOnTabSwitch(func(int) { called = true })
	tc.Switch(context.Background(), 2)

	assert.Equal(t, 0, sw.active)
	assert.False(t, called)
}

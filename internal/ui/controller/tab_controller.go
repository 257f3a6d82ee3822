package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// TabSwitcher is the part of the host the tab bar drives.
type TabSwitcher interface {
	SwitchTab(ctx context.Context, index int) error
	ActiveTab() int
}

// TabItem is one rendered tab bar entry.
type TabItem struct {
	Label   string
	Glyph   port.Glyph
	HasIcon bool
	Tint    string
	Active  bool
}

// TabController synchronizes the navigation tree tabs with the tab bar.
type TabController struct {
	tree     *entity.NavigationTree
	icons    *usecase.IconDispatcher
	switcher TabSwitcher

	activeTint   string
	inactiveTint string
	iconSize     int

	// Callback when a tab switch changed the active stack
	onTabSwitch func(index int)

	logger *zerolog.Logger
	mu     sync.RWMutex
}

// NewTabController creates a new controller linking the tree to the tab bar.
func NewTabController(
	ctx context.Context,
	tree *entity.NavigationTree,
	icons *usecase.IconDispatcher,
	switcher TabSwitcher,
	activeTint, inactiveTint string,
	iconSize int,
) *TabController {
	return &TabController{
		tree:         tree,
		icons:        icons,
		switcher:     switcher,
		activeTint:   activeTint,
		inactiveTint: inactiveTint,
		iconSize:     iconSize,
		logger:       logging.FromContext(ctx),
	}
}

// SetOnTabSwitch sets the callback invoked after a successful switch.
func (tc *TabController) SetOnTabSwitch(fn func(index int)) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.onTabSwitch = fn
}

// Items returns the tab bar entries in declaration order.
func (tc *TabController) Items() []TabItem {
	active := tc.switcher.ActiveTab()
	items := make([]TabItem, 0, len(tc.tree.Tabs))
	for i, tab := range tc.tree.Tabs {
		tint := tc.inactiveTint
		if i == active {
			tint = tc.activeTint
		}
		item := TabItem{Label: tab.Name, Tint: tint, Active: i == active}
		if tc.icons != nil {
			item.Glyph, item.HasIcon = tc.icons.TabGlyph(tab, tc.iconSize, tint)
		}
		items = append(items, item)
	}
	return items
}

// Switch activates tab index.
func (tc *TabController) Switch(ctx context.Context, index int) {
	current := tc.switcher.ActiveTab()
	if index == current {
		return // Already active
	}

	tc.logger.Debug().
		Int("from", current).
		Int("to", index).
		Msg("switching tab")

	if err := tc.switcher.SwitchTab(ctx, index); err != nil {
		tc.logger.Error().Err(err).Int("index", index).Msg("failed to switch tab")
		return
	}

	tc.mu.RLock()
	callback := tc.onTabSwitch
	tc.mu.RUnlock()

	if callback != nil {
		callback(index)
	}
}

// Next activates the tab to the right, wrapping around.
func (tc *TabController) Next(ctx context.Context) {
	if n := len(tc.tree.Tabs); n > 0 {
		tc.Switch(ctx, (tc.switcher.ActiveTab()+1)%n)
	}
}

// Prev activates the tab to the left, wrapping around.
func (tc *TabController) Prev(ctx context.Context) {
	if n := len(tc.tree.Tabs); n > 0 {
		tc.Switch(ctx, (tc.switcher.ActiveTab()-1+n)%n)
	}
}

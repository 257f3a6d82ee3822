package controller

import (
	"context"
	"fmt"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// DefaultItemColor tints item glyphs. Item icons ignore the screen config.
const DefaultItemColor = "black"

// ListController drives a list screen.
type ListController struct {
	screenBase
	resolver       *usecase.ContentResolver
	icons          *usecase.IconDispatcher
	itemColor      string
	indicatorColor string
}

// NewListController creates a list screen.
func NewListController(
	id entity.ScreenID,
	route string,
	params entity.ResolvedScreenParams,
	nav port.Navigator,
	resolver *usecase.ContentResolver,
	icons *usecase.IconDispatcher,
) *ListController {
	return &ListController{
		screenBase:     newScreenBase(id, route, params, nav),
		resolver:       resolver,
		icons:          icons,
		itemColor:      DefaultItemColor,
		indicatorColor: DefaultItemColor,
	}
}

// SetDefaultColors overrides the item glyph and indicator defaults.
func (c *ListController) SetDefaultColors(item, indicator string) {
	if item != "" {
		c.itemColor = item
	}
	if indicator != "" {
		c.indicatorColor = indicator
	}
}

// Items returns the list rows. Never nil.
func (c *ListController) Items() []entity.ListItem {
	if c.params.Items == nil {
		return []entity.ListItem{}
	}
	return c.params.Items
}

// IsEmpty reports whether the empty state should be shown.
func (c *ListController) IsEmpty() bool {
	return len(c.params.Items) == 0
}

// Select returns the navigation request for item i. Items without a target,
// targets of unknown type and out-of-range indexes yield false.
func (c *ListController) Select(ctx context.Context, i int) (entity.NavigationRequest, bool) {
	log := logging.FromContext(ctx)

	if i < 0 || i >= len(c.params.Items) {
		return entity.NavigationRequest{}, false
	}
	item := c.params.Items[i]
	if item.Target == nil {
		log.Debug().Int("index", i).Msg("list item has no target")
		return entity.NavigationRequest{}, false
	}

	req, ok := c.resolver.ResolveTarget(*item.Target)
	if !ok {
		log.Debug().Int("index", i).Str("type", item.Target.Type).Msg("list item target has unknown type")
		return entity.NavigationRequest{}, false
	}
	return req, true
}

// Open selects item i and hands the request to the navigator. Inert items
// return nil without navigating.
func (c *ListController) Open(ctx context.Context, i int) error {
	req, ok := c.Select(ctx, i)
	if !ok {
		return nil
	}
	if err := c.nav.Navigate(ctx, req); err != nil {
		return fmt.Errorf("navigate to %s: %w", req.Route, err)
	}
	return nil
}

// ItemGlyph resolves the icon of item i from its own icon and iconType.
func (c *ListController) ItemGlyph(i, size int) (port.Glyph, bool) {
	if c.icons == nil || i < 0 || i >= len(c.params.Items) {
		return port.Glyph{}, false
	}
	item := c.params.Items[i]
	return c.icons.ResolveNamed(item.IconType, item.Icon, size, c.itemColor)
}

// IndicatorColor is the tint of the "navigates further" marker. It follows
// the screen's iconeColor config when set.
func (c *ListController) IndicatorColor() string {
	if color, ok := c.params.Config.IconColor(); ok {
		return color
	}
	return c.indicatorColor
}

// Navigable reports whether item i leads anywhere.
func (c *ListController) Navigable(i int) bool {
	if i < 0 || i >= len(c.params.Items) {
		return false
	}
	t := c.params.Items[i].Target
	return t != nil && t.Kind() != entity.ContentUnknown
}

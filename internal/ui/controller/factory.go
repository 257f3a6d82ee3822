package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// Factory creates the controller matching resolved params.
type Factory struct {
	resolver       *usecase.ContentResolver
	icons          *usecase.IconDispatcher
	pages          port.PageViewFactory
	itemColor      string
	indicatorColor string
	newID          func() entity.ScreenID
}

// NewFactory creates a controller factory. pages may be nil when no page
// backend is available; page screens then fail to create.
func NewFactory(resolver *usecase.ContentResolver, icons *usecase.IconDispatcher, pages port.PageViewFactory) *Factory {
	return &Factory{
		resolver: resolver,
		icons:    icons,
		pages:    pages,
		newID:    newScreenID,
	}
}

// SetListColors sets the default item glyph and indicator colors of list
// screens created afterwards.
func (f *Factory) SetListColors(item, indicator string) {
	f.itemColor = item
	f.indicatorColor = indicator
}

// New creates an unmounted screen for route.
func (f *Factory) New(ctx context.Context, nav port.Navigator, route string, params entity.ResolvedScreenParams) (Screen, error) {
	id := f.newID()

	switch params.Kind {
	case entity.ContentList:
		c := NewListController(id, route, params, nav, f.resolver, f.icons)
		c.SetDefaultColors(f.itemColor, f.indicatorColor)
		return c, nil
	case entity.ContentWebView:
		if f.pages == nil {
			return nil, fmt.Errorf("create %s screen: no page backend", route)
		}
		page, err := f.pages.Create(ctx)
		if err != nil {
			return nil, fmt.Errorf("create page view: %w", err)
		}
		return NewWebViewController(id, route, params, nav, page), nil
	case entity.ContentDynamic:
		return NewDynamicController(id, route, params, nav), nil
	case entity.ContentUnknown:
		return NewBlankController(id, route, params, nav), nil
	default:
		return NewBlankController(id, route, params, nav), nil
	}
}

func newScreenID() entity.ScreenID {
	id, err := uuid.NewV7()
	if err != nil {
		return entity.ScreenID(uuid.NewString())
	}
	return entity.ScreenID(id.String())
}

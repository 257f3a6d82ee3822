package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/port/mocks"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
)

type pageFactoryFunc func(ctx context.Context) (port.PageView, error)

func (f pageFactoryFunc) Create(ctx context.Context) (port.PageView, error) { return f(ctx) }

func TestFactory_CreatesControllerPerKind(t *testing.T) {
	page := mocks.NewMockPageView(t)
	pages := pageFactoryFunc(func(context.Context) (port.PageView, error) { return page, nil })
	f := NewFactory(usecase.NewContentResolver(), usecase.NewIconDispatcher(), pages)
	nav := mocks.NewMockNavigator(t)
	ctx := context.Background()

	s, err := f.New(ctx, nav, entity.RouteList, entity.ResolvedScreenParams{Kind: entity.ContentList})
	require.NoError(t, err)
	assert.IsType(t, &ListController{}, s)

	s, err = f.New(ctx, nav, entity.RouteWebView, entity.ResolvedScreenParams{Kind: entity.ContentWebView})
	require.NoError(t, err)
	assert.IsType(t, &WebViewController{}, s)

	s, err = f.New(ctx, nav, entity.RouteDynamic, entity.ResolvedScreenParams{Kind: entity.ContentDynamic})
	require.NoError(t, err)
	assert.IsType(t, &DynamicController{}, s)

	s, err = f.New(ctx, nav, "Odd", entity.ResolvedScreenParams{Kind: entity.ContentUnknown})
	require.NoError(t, err)
	assert.IsType(t, &BlankController{}, s)
}

func TestFactory_UniqueScreenIDs(t *testing.T) {
	f := NewFactory(usecase.NewContentResolver(), nil, nil)
	nav := mocks.NewMockNavigator(t)

	a, err := f.New(context.Background(), nav, entity.RouteDynamic, entity.ResolvedScreenParams{Kind: entity.ContentDynamic})
	require.NoError(t, err)
	b, err := f.New(context.Background(), nav, entity.RouteDynamic, entity.ResolvedScreenParams{Kind: entity.ContentDynamic})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestFactory_PageBackendErrors(t *testing.T) {
	nav := mocks.NewMockNavigator(t)

	_, err := NewFactory(usecase.NewContentResolver(), nil, nil).
		New(context.Background(), nav, entity.RouteWebView, entity.ResolvedScreenParams{Kind: entity.ContentWebView})
	require.Error(t, err)

	boom := errors.New("boom")
	pages := pageFactoryFunc(func(context.Context) (port.PageView, error) { return nil, boom })
	_, err = NewFactory(usecase.NewContentResolver(), nil, pages).
		New(context.Background(), nav, entity.RouteWebView, entity.ResolvedScreenParams{Kind: entity.ContentWebView})
	assert.ErrorIs(t, err, boom)
}

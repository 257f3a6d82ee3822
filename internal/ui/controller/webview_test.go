package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/port/mocks"
	"github.com/bnema/tabshell/internal/domain/entity"
)

type webviewFixture struct {
	nav       *mocks.MockNavigator
	page      *mocks.MockPageView
	ctrl      *WebViewController
	handler   port.BackHandler
	callbacks *port.PageCallbacks
	removed   int
}

func newWebviewFixture(t *testing.T) *webviewFixture {
	t.Helper()
	f := &webviewFixture{
		nav:  mocks.NewMockNavigator(t),
		page: mocks.NewMockPageView(t),
	}

	params := entity.ResolvedScreenParams{Kind: entity.ContentWebView, URL: "https://x", Title: "T", Header: true}
	f.ctrl = NewWebViewController("screen-1", entity.RouteWebView, params, f.nav, f.page)

	f.page.EXPECT().Apply(port.FixedPagePolicy).Return().Once()
	f.page.EXPECT().SetCallbacks(mock.Anything).Run(func(cb *port.PageCallbacks) {
		if cb != nil {
			f.callbacks = cb
		}
	}).Return()
	f.page.EXPECT().Load(mock.Anything, "https://x").Return(nil)
	f.nav.EXPECT().AddBackHandler(entity.ScreenID("screen-1"), mock.Anything).
		Run(func(_ entity.ScreenID, h port.BackHandler) { f.handler = h }).
		Return(func() { f.removed++ }).Once()

	return f
}

func TestWebView_MountStartsInLoading(t *testing.T) {
	f := newWebviewFixture(t)

	require.NoError(t, f.ctrl.Mount(context.Background()))

	assert.Equal(t, LoadStateLoading, f.ctrl.State())
	assert.True(t, f.ctrl.SkeletonVisible())
	assert.False(t, f.ctrl.ContentVisible())
	require.NotNil(t, f.handler)
	require.NotNil(t, f.callbacks)
}

func TestWebView_StartThenFinishEndsLoaded(t *testing.T) {
	f := newWebviewFixture(t)
	require.NoError(t, f.ctrl.Mount(context.Background()))

	f.callbacks.OnLoadChanged(port.LoadStarted)
	assert.Equal(t, LoadStatePageLoading, f.ctrl.State())
	assert.True(t, f.ctrl.IndicatorActive())

	f.callbacks.OnLoadChanged(port.LoadStarted)
	assert.Equal(t, LoadStatePageLoading, f.ctrl.State())

	f.callbacks.OnLoadChanged(port.LoadFinished)
	assert.Equal(t, LoadStateLoaded, f.ctrl.State())
	assert.False(t, f.ctrl.SkeletonVisible())
	assert.True(t, f.ctrl.ContentVisible())
}

func TestWebView_LoadedIsTerminal(t *testing.T) {
	f := newWebviewFixture(t)
	require.NoError(t, f.ctrl.Mount(context.Background()))

	f.callbacks.OnLoadChanged(port.LoadFinished)
	f.callbacks.OnLoadChanged(port.LoadStarted)

	assert.Equal(t, LoadStateLoaded, f.ctrl.State())
}

func TestWebView_FinishFromLoading(t *testing.T) {
	f := newWebviewFixture(t)
	require.NoError(t, f.ctrl.Mount(context.Background()))

	f.callbacks.OnLoadChanged(port.LoadFinished)
	assert.Equal(t, LoadStateLoaded, f.ctrl.State())
}

func TestWebView_UpdateResetsToLoading(t *testing.T) {
	f := newWebviewFixture(t)
	require.NoError(t, f.ctrl.Mount(context.Background()))
	f.callbacks.OnLoadChanged(port.LoadFinished)

	f.ctrl.Update(context.Background(), entity.ResolvedScreenParams{Kind: entity.ContentWebView, URL: "https://x"})

	assert.Equal(t, LoadStateLoading, f.ctrl.State())
}

func TestWebView_MountWithoutURLIsBlank(t *testing.T) {
	nav := mocks.NewMockNavigator(t)
	page := mocks.NewMockPageView(t)
	ctrl := NewWebViewController("screen-2", entity.RouteWebView,
		entity.ResolvedScreenParams{Kind: entity.ContentWebView, Header: true}, nav, page)

	page.EXPECT().Apply(port.FixedPagePolicy).Return().Once()
	page.EXPECT().SetCallbacks(mock.Anything).Return().Once()
	nav.EXPECT().AddBackHandler(entity.ScreenID("screen-2"), mock.Anything).Return(func() {}).Once()

	require.NoError(t, ctrl.Mount(context.Background()))

	assert.True(t, ctrl.Blank())
	assert.Equal(t, LoadStateLoaded, ctrl.State())
	assert.False(t, ctrl.SkeletonVisible())
	assert.False(t, ctrl.IndicatorActive())
	page.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestWebView_UpdateToEmptyURLIsBlank(t *testing.T) {
	f := newWebviewFixture(t)
	require.NoError(t, f.ctrl.Mount(context.Background()))

	f.ctrl.Update(context.Background(), entity.ResolvedScreenParams{Kind: entity.ContentWebView})

	assert.True(t, f.ctrl.Blank())
	assert.Equal(t, LoadStateLoaded, f.ctrl.State())
}

func TestWebView_UnmountDuringLoadDeregistersWithoutInvoking(t *testing.T) {
	f := newWebviewFixture(t)
	f.page.EXPECT().Close().Return().Once()
	require.NoError(t, f.ctrl.Mount(context.Background()))

	f.callbacks.OnLoadChanged(port.LoadStarted)
	f.ctrl.Unmount(context.Background())

	assert.Equal(t, 1, f.removed)
	f.page.AssertNotCalled(t, "CanGoBack")
	f.page.AssertNotCalled(t, "GoBack", mock.Anything)

	f.callbacks.OnLoadChanged(port.LoadFinished)
	assert.Equal(t, LoadStatePageLoading, f.ctrl.State())
}

func TestWebView_BackWithHistoryIsHandled(t *testing.T) {
	f := newWebviewFixture(t)
	f.page.EXPECT().CanGoBack().Return(true).Once()
	f.page.EXPECT().GoBack(mock.Anything).Return(nil).Once()
	require.NoError(t, f.ctrl.Mount(context.Background()))

	assert.True(t, f.handler(context.Background()))
}

func TestWebView_BackWithoutHistoryIsUnhandled(t *testing.T) {
	f := newWebviewFixture(t)
	f.page.EXPECT().CanGoBack().Return(false).Once()
	require.NoError(t, f.ctrl.Mount(context.Background()))

	assert.False(t, f.handler(context.Background()))
	f.page.AssertNotCalled(t, "GoBack", mock.Anything)
}

func TestWebView_BackFailureIsUnhandled(t *testing.T) {
	f := newWebviewFixture(t)
	f.page.EXPECT().CanGoBack().Return(true).Once()
	f.page.EXPECT().GoBack(mock.Anything).Return(port.ErrNoHistory).Once()
	require.NoError(t, f.ctrl.Mount(context.Background()))

	assert.False(t, f.handler(context.Background()))
}

func TestLoadState_String(t *testing.T) {
	assert.Equal(t, "loading", LoadStateLoading.String())
	assert.Equal(t, "page-loading", LoadStatePageLoading.String())
	assert.Equal(t, "loaded", LoadStateLoaded.String())
}

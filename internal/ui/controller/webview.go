package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// LoadState is the embedded page screen state.
type LoadState int

const (
	// LoadStateLoading shows the skeleton and hides the page.
	LoadStateLoading LoadState = iota
	// LoadStatePageLoading drives the host loading indicator.
	LoadStatePageLoading
	// LoadStateLoaded hides the skeleton and shows the page.
	LoadStateLoaded
)

func (s LoadState) String() string {
	switch s {
	case LoadStateLoading:
		return "loading"
	case LoadStatePageLoading:
		return "page-loading"
	case LoadStateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// WebViewController drives an embedded page screen.
type WebViewController struct {
	screenBase
	page       port.PageView
	state      LoadState
	removeBack func()
	ctx        context.Context
}

// NewWebViewController creates a page screen around page.
func NewWebViewController(
	id entity.ScreenID,
	route string,
	params entity.ResolvedScreenParams,
	nav port.Navigator,
	page port.PageView,
) *WebViewController {
	return &WebViewController{
		screenBase: newScreenBase(id, route, params, nav),
		page:       page,
		state:      LoadStateLoading,
		ctx:        context.Background(),
	}
}

// Mount registers back interception, applies the page policy and starts
// loading the URL.
func (c *WebViewController) Mount(ctx context.Context) error {
	ctx = logging.WithURL(ctx, c.params.URL)
	c.ctx = ctx
	_ = c.screenBase.Mount(ctx)

	c.state = LoadStateLoading
	c.page.Apply(port.FixedPagePolicy)
	c.page.SetCallbacks(&port.PageCallbacks{OnLoadChanged: c.HandleLoadEvent})
	c.removeBack = c.nav.AddBackHandler(c.id, c.HandleBack)

	return c.load(ctx)
}

// Update re-enters the screen with new params and restarts the state machine.
func (c *WebViewController) Update(ctx context.Context, params entity.ResolvedScreenParams) {
	c.screenBase.Update(ctx, params)
	c.state = LoadStateLoading
	if !c.mounted {
		return
	}
	if err := c.load(c.ctx); err != nil {
		logging.FromContext(c.ctx).Warn().Err(err).Msg("page reload failed")
	}
}

func (c *WebViewController) load(ctx context.Context) error {
	if c.params.URL == "" {
		// Nothing will ever report a load; show the screen blank.
		logging.FromContext(ctx).Debug().Msg("webview screen has no url")
		c.state = LoadStateLoaded
		return nil
	}
	if err := c.page.Load(ctx, c.params.URL); err != nil {
		return fmt.Errorf("load page: %w", err)
	}
	return nil
}

// HandleLoadEvent advances the state machine. Events after unmount are ignored.
func (c *WebViewController) HandleLoadEvent(event port.LoadEvent) {
	if !c.mounted {
		return
	}
	prev := c.state
	switch event {
	case port.LoadStarted:
		if c.state == LoadStateLoading || c.state == LoadStatePageLoading {
			c.state = LoadStatePageLoading
		}
	case port.LoadFinished:
		c.state = LoadStateLoaded
	}

	if prev != c.state {
		logging.FromContext(c.ctx).Debug().
			Str("event", event.String()).
			Str("from", prev.String()).
			Str("to", c.state.String()).
			Msg("page load state changed")
	}
}

// HandleBack navigates the page back when it has history. It returns false
// when the host should pop the screen instead.
func (c *WebViewController) HandleBack(ctx context.Context) bool {
	if !c.mounted || !c.page.CanGoBack() {
		return false
	}
	if err := c.page.GoBack(ctx); err != nil {
		if !errors.Is(err, port.ErrNoHistory) {
			logging.FromContext(ctx).Warn().Err(err).Msg("page back navigation failed")
		}
		return false
	}
	return true
}

// Unmount removes back interception synchronously and closes the page.
func (c *WebViewController) Unmount(ctx context.Context) {
	if c.removeBack != nil {
		c.removeBack()
		c.removeBack = nil
	}
	c.page.SetCallbacks(nil)
	c.page.Close()
	c.screenBase.Unmount(ctx)
}

// State returns the current load state.
func (c *WebViewController) State() LoadState { return c.state }

// SkeletonVisible reports whether the placeholder is shown.
func (c *WebViewController) SkeletonVisible() bool { return c.state != LoadStateLoaded }

// ContentVisible reports whether the page content is shown.
func (c *WebViewController) ContentVisible() bool { return c.state == LoadStateLoaded }

// IndicatorActive reports whether the host loading indicator should run.
func (c *WebViewController) IndicatorActive() bool { return c.state == LoadStatePageLoading }

// Blank reports whether the screen has no page to show.
func (c *WebViewController) Blank() bool { return c.params.URL == "" }

// Page returns the embedded page.
func (c *WebViewController) Page() port.PageView { return c.page }

// Follow loads a link of the current page inside the same screen.
func (c *WebViewController) Follow(ctx context.Context, url string) error {
	if !c.mounted {
		return nil
	}
	if err := c.page.Load(ctx, url); err != nil {
		return fmt.Errorf("follow link: %w", err)
	}
	return nil
}

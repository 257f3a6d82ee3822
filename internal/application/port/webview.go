// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (terminal renderer, HTTP, etc.).
package port

import (
	"context"
	"errors"
)

// ErrNoHistory is returned by GoBack when the page has nothing to go back to.
var ErrNoHistory = errors.New("page has no back history")

// LoadEvent represents page load state transitions.
type LoadEvent int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted LoadEvent = iota
	// LoadFinished indicates the page has settled, successfully or not.
	LoadFinished
)

// String returns a human-readable representation of the load event.
func (e LoadEvent) String() string {
	switch e {
	case LoadStarted:
		return "started"
	case LoadFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// PageLink is a followable link found in an embedded page.
type PageLink struct {
	Text string
	URL  string
}

// PageState represents a snapshot of the current page.
// This is an immutable struct that can be safely passed between components.
type PageState struct {
	URL       string
	Title     string
	Text      string
	Links     []PageLink
	IsLoading bool
	CanGoBack bool
	Err       error
}

// PagePolicy is the presentation policy applied to an embedded page.
type PagePolicy struct {
	FitViewport bool
	UserZoom    bool
}

// FixedPagePolicy constrains content to the viewport with zoom disabled.
var FixedPagePolicy = PagePolicy{FitViewport: true, UserZoom: false}

// PageCallbacks defines callback handlers for page events.
// Implementations must invoke these on the UI event loop.
type PageCallbacks struct {
	// OnLoadChanged is called when load state changes.
	OnLoadChanged func(event LoadEvent)
}

// PageView defines the port interface for an embedded page.
type PageView interface {
	// Apply sets the presentation policy before the first load.
	Apply(policy PagePolicy)

	// Load navigates to url, pushing the current page onto the history.
	Load(ctx context.Context, url string) error

	// GoBack navigates back in history.
	// Returns ErrNoHistory if back navigation is not possible.
	GoBack(ctx context.Context) error

	// CanGoBack returns true if back navigation is available.
	CanGoBack() bool

	// State returns the current page state as a snapshot.
	State() PageState

	// SetCallbacks registers callback handlers for page events.
	// Pass nil to clear all callbacks.
	SetCallbacks(callbacks *PageCallbacks)

	// Close stops pending loads. Callbacks never fire after Close.
	Close()
}

// PageViewFactory creates new PageView instances.
type PageViewFactory interface {
	Create(ctx context.Context) (PageView, error)
}

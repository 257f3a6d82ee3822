package entity

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrNoTabs is returned when a document has nothing to navigate.
	ErrNoTabs = errors.New("no tabs to display")
	// ErrUnknownRoute is returned when a route is not registered in a stack.
	ErrUnknownRoute = errors.New("unknown route")
)

// DuplicateRouteError reports a name registered twice in the same navigator.
// The later registration replaced the earlier one.
type DuplicateRouteError struct {
	Tab  string // empty for the tab navigator itself
	Name string
}

func (e *DuplicateRouteError) Error() string {
	if e.Tab == "" {
		return fmt.Sprintf("duplicate tab %q: last declaration wins", e.Name)
	}
	return fmt.Sprintf("duplicate route %q in tab %q: last declaration wins", e.Name, e.Tab)
}

// ScreenID identifies one mounted screen instance.
type ScreenID string

// NavigationRequest is the (route, params) pair emitted by screens.
type NavigationRequest struct {
	Route  string
	Params RouteParams
}

// RouteParams carries a runtime navigation's parameters. List is always
// true for requests built from list item targets.
type RouteParams struct {
	List bool
	TargetParams
}

// MarshalJSON keeps a declared empty config as {} and only emits the kind
// fields that were set.
func (p RouteParams) MarshalJSON() ([]byte, error) {
	out := map[string]any{"list": p.List}
	if p.Title != "" {
		out["title"] = p.Title
	}
	if p.Color != "" {
		out["color"] = p.Color
	}
	if p.Config != nil {
		out["config"] = map[string]any(p.Config)
	}
	if p.Items != nil {
		out["items"] = p.Items
	}
	if p.URL != "" {
		out["url"] = p.URL
	}
	if p.Content != "" {
		out["content"] = p.Content
	}
	return json.Marshal(out)
}

// ResolvedScreenParams is the single shape every screen controller consumes,
// whether mounted from a declared route or reached at runtime.
type ResolvedScreenParams struct {
	Kind    ContentKind
	Title   string
	Color   string
	Config  StyleConfig
	Header  bool
	Items   []ListItem
	URL     string
	Content string
	// Dynamic is true when the screen was reached through a runtime request.
	Dynamic bool
}

// Route is one entry of a stack's route table.
type Route struct {
	Name string
	Kind ContentKind
	// Initial is the declared screen for schema routes, nil for fallbacks.
	Initial *ScreenSpec
}

// Declared reports whether the route comes from the document.
func (r Route) Declared() bool {
	return r.Initial != nil
}

// StackRoutes is an insertion-ordered route table for one tab stack.
type StackRoutes struct {
	order   []string
	routes  map[string]Route
	Initial string
}

// NewStackRoutes creates an empty route table.
func NewStackRoutes() *StackRoutes {
	return &StackRoutes{routes: make(map[string]Route)}
}

// Register adds or replaces a route. It reports whether a route with the
// same name existed.
func (s *StackRoutes) Register(r Route) bool {
	_, exists := s.routes[r.Name]
	if !exists {
		s.order = append(s.order, r.Name)
	}
	s.routes[r.Name] = r
	return exists
}

// Lookup returns the route registered under name.
func (s *StackRoutes) Lookup(name string) (Route, bool) {
	r, ok := s.routes[name]
	return r, ok
}

// Names returns route names in first-registration order.
func (s *StackRoutes) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of registered routes.
func (s *StackRoutes) Len() int {
	return len(s.order)
}

// TabRoute is one top-level tab pointing at its stack.
type TabRoute struct {
	Name       string
	Icon       string
	IconFamily IconFamily
	Stack      *StackRoutes
}

// NavigationTree is the registered tab → stack → route table.
type NavigationTree struct {
	Tabs        []TabRoute
	Theme       Theme
	Diagnostics *multierror.Error
}

// TabIndex returns the position of the named tab.
func (t *NavigationTree) TabIndex(name string) (int, bool) {
	for i := range t.Tabs {
		if t.Tabs[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// Warnings returns the caller-input diagnostics collected while building.
func (t *NavigationTree) Warnings() []error {
	if t == nil || t.Diagnostics == nil {
		return nil
	}
	return t.Diagnostics.Errors
}

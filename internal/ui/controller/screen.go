// Package controller provides the per-screen controllers that bridge resolved
// screen parameters and the host navigator.
package controller

import (
	"context"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// Screen is one mounted screen instance on a stack.
type Screen interface {
	ID() entity.ScreenID
	Route() string
	Params() entity.ResolvedScreenParams

	// Mount attaches the screen. It must not touch host header state.
	Mount(ctx context.Context) error
	// Update replaces the params, as when a route is re-entered in place.
	Update(ctx context.Context, params entity.ResolvedScreenParams)
	// Committed runs post-commit effects once the host rendered the screen.
	Committed(ctx context.Context)
	// Unmount detaches the screen and releases host registrations.
	Unmount(ctx context.Context)
}

type screenBase struct {
	id      entity.ScreenID
	route   string
	params  entity.ResolvedScreenParams
	nav     port.Navigator
	header  *HeaderEffect
	mounted bool
}

func newScreenBase(id entity.ScreenID, route string, params entity.ResolvedScreenParams, nav port.Navigator) screenBase {
	return screenBase{
		id:     id,
		route:  route,
		params: params,
		nav:    nav,
		header: NewHeaderEffect(id, nav),
	}
}

func (s *screenBase) ID() entity.ScreenID                 { return s.id }
func (s *screenBase) Route() string                       { return s.route }
func (s *screenBase) Params() entity.ResolvedScreenParams { return s.params }

func (s *screenBase) Mount(_ context.Context) error {
	s.mounted = true
	s.header.Schedule(s.params)
	return nil
}

func (s *screenBase) Update(_ context.Context, params entity.ResolvedScreenParams) {
	s.params = params
	s.header.Schedule(params)
}

func (s *screenBase) Committed(_ context.Context) {
	if !s.mounted {
		return
	}
	s.header.Flush()
}

func (s *screenBase) Unmount(_ context.Context) {
	s.mounted = false
}

// BlankController renders nothing. It backs screens of unknown kind.
type BlankController struct {
	screenBase
}

// NewBlankController creates a screen with no content.
func NewBlankController(id entity.ScreenID, route string, params entity.ResolvedScreenParams, nav port.Navigator) *BlankController {
	return &BlankController{screenBase: newScreenBase(id, route, params, nav)}
}

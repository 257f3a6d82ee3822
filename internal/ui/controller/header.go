package controller

import (
	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// HeaderEffect applies a screen's header title and tint after the host has
// committed the render that introduced them. It is keyed on the options
// value, so unchanged params never reach the host twice.
type HeaderEffect struct {
	id      entity.ScreenID
	nav     port.Navigator
	applied *port.HeaderOptions
	pending *port.HeaderOptions
}

// NewHeaderEffect creates the header effect for screen id.
func NewHeaderEffect(id entity.ScreenID, nav port.Navigator) *HeaderEffect {
	return &HeaderEffect{id: id, nav: nav}
}

// HeaderOptionsFor derives the header options of resolved params.
func HeaderOptionsFor(params entity.ResolvedScreenParams) port.HeaderOptions {
	return port.HeaderOptions{
		Title: params.Title,
		Tint:  params.Color,
		Shown: params.Header,
	}
}

// Schedule records the options to apply on the next Flush.
func (e *HeaderEffect) Schedule(params entity.ResolvedScreenParams) {
	opts := HeaderOptionsFor(params)
	if e.applied != nil && *e.applied == opts {
		e.pending = nil
		return
	}
	e.pending = &opts
}

// Pending reports whether a Flush would call the host.
func (e *HeaderEffect) Pending() bool {
	return e.pending != nil
}

// Flush applies pending options. It returns true when the host was called.
func (e *HeaderEffect) Flush() bool {
	if e.pending == nil || e.nav == nil {
		return false
	}
	opts := *e.pending
	e.pending = nil
	e.nav.SetHeader(e.id, opts)
	e.applied = &opts
	return true
}

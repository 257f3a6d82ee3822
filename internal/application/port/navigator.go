package port

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// HeaderOptions is what a screen asks the host to show in its stack header.
type HeaderOptions struct {
	Title string
	Tint  string
	Shown bool
}

// BackHandler intercepts the hardware back action. It returns true when it
// consumed the action.
type BackHandler func(ctx context.Context) bool

// Navigator is the host navigation runtime as seen by screens.
type Navigator interface {
	// Navigate pushes (or updates) the route named in req.
	Navigate(ctx context.Context, req entity.NavigationRequest) error

	// Pop removes the top screen of the active stack.
	Pop(ctx context.Context) bool

	// SetHeader configures the header of a mounted screen.
	SetHeader(id entity.ScreenID, opts HeaderOptions)

	// AddBackHandler registers h for screen id. The returned func removes it
	// and is safe to call more than once.
	AddBackHandler(id entity.ScreenID, h BackHandler) (remove func())
}

// Package navigation is the in-process navigation host: tabs of lazily
// created stacks, back interception and deferred header application.
// A Host is not safe for concurrent use; it lives on the UI event loop.
package navigation

import (
	"context"
	"fmt"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui/controller"
)

// ScreenFactory creates unmounted screens.
type ScreenFactory interface {
	New(ctx context.Context, nav port.Navigator, route string, params entity.ResolvedScreenParams) (controller.Screen, error)
}

// Options tunes host behaviour.
type Options struct {
	// ReuseActiveRoute updates the top screen in place when a request
	// targets its route, instead of pushing a new instance.
	ReuseActiveRoute bool
}

type backEntry struct {
	id      uint64
	handler port.BackHandler
}

// Host implements port.Navigator over a registered NavigationTree.
type Host struct {
	resolver *usecase.ContentResolver
	factory  ScreenFactory
	opts     Options

	tree    *entity.NavigationTree
	stacks  map[int]*Stack
	active  int
	headers map[entity.ScreenID]port.HeaderOptions
	back    map[entity.ScreenID][]backEntry
	nextID  uint64
	pending []controller.Screen
	// revs counts in-place param updates per screen.
	revs map[entity.ScreenID]uint64
}

var _ port.Navigator = (*Host)(nil)

// NewHost creates a host with nothing registered.
func NewHost(resolver *usecase.ContentResolver, factory ScreenFactory, opts Options) *Host {
	return &Host{
		resolver: resolver,
		factory:  factory,
		opts:     opts,
		stacks:   make(map[int]*Stack),
		headers:  make(map[entity.ScreenID]port.HeaderOptions),
		back:     make(map[entity.ScreenID][]backEntry),
		revs:     make(map[entity.ScreenID]uint64),
	}
}

// Register installs the route table and shows the first tab. Any previous
// tree is torn down first.
func (h *Host) Register(ctx context.Context, tree *entity.NavigationTree) error {
	if tree == nil || len(tree.Tabs) == 0 {
		return entity.ErrNoTabs
	}

	h.Close(ctx)
	h.tree = tree
	h.active = 0

	logging.FromContext(ctx).Debug().Int("tabs", len(tree.Tabs)).Msg("route table registered")
	_, err := h.ensureStack(ctx, 0)
	return err
}

// Tree returns the registered route table.
func (h *Host) Tree() *entity.NavigationTree {
	return h.tree
}

// ActiveTab returns the index of the shown tab.
func (h *Host) ActiveTab() int {
	return h.active
}

// SwitchTab shows tab index, creating its stack on first use. Stacks keep
// their screens across switches.
func (h *Host) SwitchTab(ctx context.Context, index int) error {
	if h.tree == nil || index < 0 || index >= len(h.tree.Tabs) {
		return fmt.Errorf("switch tab: index %d out of range", index)
	}
	h.active = index
	stack, err := h.ensureStack(ctx, index)
	if err != nil {
		return err
	}
	if top := stack.Peek(); top != nil {
		h.schedule(top)
	}
	return nil
}

func (h *Host) ensureStack(ctx context.Context, index int) (*Stack, error) {
	if s, ok := h.stacks[index]; ok {
		return s, nil
	}

	tab := h.tree.Tabs[index]
	ctx = logging.WithTab(ctx, tab.Name)

	route, ok := tab.Stack.Lookup(tab.Stack.Initial)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownRoute, tab.Stack.Initial)
	}

	var params entity.ResolvedScreenParams
	if route.Declared() {
		params = h.resolver.ResolveScreen(*route.Initial, h.tree.Theme)
	} else {
		root := entity.ResolvedScreenParams{
			Title:  tab.Name,
			Color:  h.tree.Theme.HeaderColor,
			Config: h.tree.Theme.Styles,
		}
		params = h.resolver.ResolveRoute(entity.NavigationRequest{Route: route.Name}, root)
	}

	stack := NewStack()
	h.stacks[index] = stack
	if err := h.push(ctx, stack, route.Name, params); err != nil {
		return stack, err
	}
	return stack, nil
}

// Navigate executes a navigation request on the active stack.
func (h *Host) Navigate(ctx context.Context, req entity.NavigationRequest) error {
	log := logging.FromContext(ctx)

	stack := h.activeStack()
	if stack == nil {
		return entity.ErrNoTabs
	}
	tab := h.tree.Tabs[h.active]

	route, ok := tab.Stack.Lookup(req.Route)
	if !ok {
		log.Warn().Str(logging.FieldTab, tab.Name).Str(logging.FieldRoute, req.Route).Msg("navigation to unknown route ignored")
		return fmt.Errorf("%w: %s", entity.ErrUnknownRoute, req.Route)
	}

	params := h.resolve(route, req, stack.Peek())

	if top := stack.Peek(); h.opts.ReuseActiveRoute && top != nil && top.Route() == req.Route {
		log.Debug().Str("route", req.Route).Msg("updating active route in place")
		top.Update(ctx, params)
		h.revs[top.ID()]++
		h.schedule(top)
		return nil
	}

	return h.push(logging.WithTab(ctx, tab.Name), stack, req.Route, params)
}

// resolve produces the destination params. A declared route reached by
// name without runtime params mounts from its declaration; everything else
// is resolved against the navigating screen.
func (h *Host) resolve(route entity.Route, req entity.NavigationRequest, parent controller.Screen) entity.ResolvedScreenParams {
	if route.Declared() && !req.Params.List {
		return h.resolver.ResolveScreen(*route.Initial, h.tree.Theme)
	}

	var parentParams entity.ResolvedScreenParams
	if parent != nil {
		parentParams = parent.Params()
	}
	kindRoute, _ := route.Kind.Route()
	return h.resolver.ResolveRoute(entity.NavigationRequest{Route: kindRoute, Params: req.Params}, parentParams)
}

func (h *Host) push(ctx context.Context, stack *Stack, route string, params entity.ResolvedScreenParams) error {
	screen, err := h.factory.New(ctx, h, route, params)
	if err != nil {
		return fmt.Errorf("create screen %s: %w", route, err)
	}

	ctx = logging.WithScreen(ctx, route, string(screen.ID()))
	stack.Push(screen)
	if err := screen.Mount(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("screen mounted with errors")
	}
	h.schedule(screen)

	logging.FromContext(ctx).Debug().
		Str("kind", params.Kind.String()).
		Int("depth", stack.Len()).
		Msg("screen pushed")
	return nil
}

// Pop removes the top screen of the active stack. The stack root is never
// popped.
func (h *Host) Pop(ctx context.Context) bool {
	stack := h.activeStack()
	if stack == nil || stack.Len() <= 1 {
		return false
	}

	screen := stack.Pop()
	h.release(ctx, screen)

	if top := stack.Peek(); top != nil {
		h.schedule(top)
	}
	return true
}

// Back runs the hardware back action: the active screen's handlers in LIFO
// order, then a pop. It returns false when nothing consumed the action.
func (h *Host) Back(ctx context.Context) bool {
	top := h.Active()
	if top == nil {
		return false
	}

	handlers := h.back[top.ID()]
	for i := len(handlers) - 1; i >= 0; i-- {
		if handlers[i].handler(ctx) {
			return true
		}
	}
	return h.Pop(ctx)
}

// SetHeader records header options for a mounted screen.
func (h *Host) SetHeader(id entity.ScreenID, opts port.HeaderOptions) {
	h.headers[id] = opts
}

// Header returns the header options last set for id.
func (h *Host) Header(id entity.ScreenID) (port.HeaderOptions, bool) {
	opts, ok := h.headers[id]
	return opts, ok
}

// AddBackHandler registers a back interceptor for screen id.
func (h *Host) AddBackHandler(id entity.ScreenID, handler port.BackHandler) func() {
	h.nextID++
	entryID := h.nextID
	h.back[id] = append(h.back[id], backEntry{id: entryID, handler: handler})

	return func() {
		entries := h.back[id]
		for i, e := range entries {
			if e.id == entryID {
				h.back[id] = append(entries[:i:i], entries[i+1:]...)
				break
			}
		}
		if len(h.back[id]) == 0 {
			delete(h.back, id)
		}
	}
}

// BackHandlers returns the number of interceptors registered for id.
func (h *Host) BackHandlers(id entity.ScreenID) int {
	return len(h.back[id])
}

// Commit runs post-commit effects of screens shown since the last commit.
// Call it after the frame that shows them was rendered.
func (h *Host) Commit(ctx context.Context) {
	pending := h.pending
	h.pending = nil
	for _, s := range pending {
		s.Committed(ctx)
	}
}

// HasPendingCommit reports whether Commit has work to do.
func (h *Host) HasPendingCommit() bool {
	return len(h.pending) > 0
}

// Active returns the top screen of the active stack.
func (h *Host) Active() controller.Screen {
	if s := h.activeStack(); s != nil {
		return s.Peek()
	}
	return nil
}

// Depth returns the active stack depth.
func (h *Host) Depth() int {
	if s := h.activeStack(); s != nil {
		return s.Len()
	}
	return 0
}

// Revision returns how many times the screen's params were replaced in
// place. State keyed on a screen is stale once its revision moves.
func (h *Host) Revision(id entity.ScreenID) uint64 {
	return h.revs[id]
}

// Mounted reports whether id is on any stack.
func (h *Host) Mounted(id entity.ScreenID) bool {
	for _, stack := range h.stacks {
		for _, s := range stack.Screens() {
			if s.ID() == id {
				return true
			}
		}
	}
	return false
}

// Close unmounts every screen of every stack, top first.
func (h *Host) Close(ctx context.Context) {
	for idx, stack := range h.stacks {
		screens := stack.Screens()
		for i := len(screens) - 1; i >= 0; i-- {
			h.release(ctx, screens[i])
		}
		stack.Clear()
		delete(h.stacks, idx)
	}
	h.pending = nil
}

func (h *Host) activeStack() *Stack {
	if h.tree == nil {
		return nil
	}
	return h.stacks[h.active]
}

func (h *Host) release(ctx context.Context, screen controller.Screen) {
	if screen == nil {
		return
	}
	screen.Unmount(ctx)
	delete(h.headers, screen.ID())
	delete(h.back, screen.ID())
	delete(h.revs, screen.ID())
	for i, s := range h.pending {
		if s == screen {
			h.pending = append(h.pending[:i:i], h.pending[i+1:]...)
			break
		}
	}
}

func (h *Host) schedule(screen controller.Screen) {
	for _, s := range h.pending {
		if s == screen {
			return
		}
	}
	h.pending = append(h.pending, screen)
}

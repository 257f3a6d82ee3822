package usecase

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// NavigationTreeBuilder expands a schema into the tab → stack → route table.
type NavigationTreeBuilder struct{}

// NewNavigationTreeBuilder creates a new NavigationTreeBuilder.
func NewNavigationTreeBuilder() *NavigationTreeBuilder {
	return &NavigationTreeBuilder{}
}

// Build returns entity.ErrNoTabs and no tree when the schema has no tabs.
// Duplicate names are kept last-wins and collected in tree.Diagnostics.
func (b *NavigationTreeBuilder) Build(ctx context.Context, schema *entity.Schema) (*entity.NavigationTree, error) {
	log := logging.FromContext(ctx)

	if !schema.HasTabs() {
		log.Info().Msg("schema has no tabs, not building a navigator")
		return nil, entity.ErrNoTabs
	}

	tree := &entity.NavigationTree{
		Tabs:  make([]entity.TabRoute, 0, len(schema.Tabs)),
		Theme: schema.Theme,
	}

	for _, tab := range schema.Tabs {
		route := entity.TabRoute{
			Name:       tab.Name,
			Icon:       tab.Icon,
			IconFamily: entity.ParseIconFamily(tab.IconFamily),
			Stack:      b.buildStack(ctx, tree, tab),
		}

		if idx, exists := tree.TabIndex(tab.Name); exists {
			tree.Tabs = append(tree.Tabs[:idx], tree.Tabs[idx+1:]...)
			b.report(ctx, tree, &entity.DuplicateRouteError{Name: tab.Name})
		}
		tree.Tabs = append(tree.Tabs, route)
	}

	log.Debug().
		Int("tabs", len(tree.Tabs)).
		Int("diagnostics", len(tree.Warnings())).
		Msg("navigation tree built")

	return tree, nil
}

func (b *NavigationTreeBuilder) buildStack(ctx context.Context, tree *entity.NavigationTree, tab entity.TabSpec) *entity.StackRoutes {
	log := logging.FromContext(logging.WithTab(ctx, tab.Name))
	stack := entity.NewStackRoutes()

	for _, name := range entity.FallbackRoutes {
		stack.Register(entity.Route{Name: name, Kind: entity.KindForRoute(name)})
	}

	for i := range tab.Screens {
		spec := tab.Screens[i]
		if spec.Name == "" {
			log.Warn().Int("index", i).Msg("skipping screen without a name")
			continue
		}
		if spec.Kind() == entity.ContentUnknown {
			log.Debug().Str("route", spec.Name).Str("type", spec.Type).Msg("screen has unknown type, it will render nothing")
		}

		if stack.Register(entity.Route{Name: spec.Name, Kind: spec.Kind(), Initial: &spec}) {
			b.report(ctx, tree, &entity.DuplicateRouteError{Tab: tab.Name, Name: spec.Name})
		}
		if stack.Initial == "" {
			stack.Initial = spec.Name
		}
	}

	if stack.Initial == "" {
		stack.Initial = entity.RouteList
	}
	return stack
}

func (b *NavigationTreeBuilder) report(ctx context.Context, tree *entity.NavigationTree, dup *entity.DuplicateRouteError) {
	logging.FromContext(ctx).Warn().
		Str("tab", dup.Tab).
		Str("route", dup.Name).
		Msg("duplicate name in schema, last declaration wins")
	tree.Diagnostics = multierror.Append(tree.Diagnostics, dup)
}

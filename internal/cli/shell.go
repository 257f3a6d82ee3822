package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/cli/model"
	"github.com/bnema/tabshell/internal/infrastructure/icons"
	"github.com/bnema/tabshell/internal/infrastructure/pageview"
	"github.com/bnema/tabshell/internal/infrastructure/schema"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui/controller"
	"github.com/bnema/tabshell/internal/ui/navigation"
)

const pageQueueSize = 64

// SourceOptions overrides where the navigation document comes from.
type SourceOptions struct {
	File     string
	Endpoint string
}

// Source returns the document source for opts, falling back to the config.
func (a *App) Source(opts SourceOptions) port.SchemaSource {
	cfg := a.Config.Schema

	file := cfg.File
	endpoint := cfg.Endpoint
	if opts.File != "" {
		file = opts.File
	}
	if opts.Endpoint != "" {
		endpoint = opts.Endpoint
		if opts.File == "" {
			file = ""
		}
	}

	return schema.NewSource(file, endpoint,
		schema.WithTimeout(cfg.Timeout()),
		schema.WithUserAgent(cfg.UserAgent),
	)
}

// RunShell fetches the document and runs the navigation shell until the
// user quits.
func (a *App) RunShell(opts SourceOptions) error {
	cfg := a.Config
	ctx, cancel := context.WithCancel(logging.With(logging.WithComponent(a.ctx, "shell"), map[string]any{
		"locale":             a.Catalog.Tag().String(),
		"reuse_active_route": cfg.Navigation.ReuseActiveRoute,
	}))
	defer cancel()

	log := logging.FromContext(ctx)

	go a.WatchConfig(ctx)

	source := a.Source(opts)

	queue := pageview.NewQueue(ctx, pageQueueSize)
	pages := pageview.NewFactory(queue.Dispatch,
		pageview.WithTimeout(cfg.Schema.Timeout()),
		pageview.WithUserAgent(cfg.Schema.UserAgent),
	)

	resolver := usecase.NewContentResolver()
	dispatcher := usecase.NewIconDispatcher(icons.All()...)
	factory := controller.NewFactory(resolver, dispatcher, pages)
	factory.SetListColors(cfg.Appearance.ItemColor, cfg.Appearance.IndicatorColor)

	host := navigation.NewHost(resolver, factory, navigation.Options{
		ReuseActiveRoute: cfg.Navigation.ReuseActiveRoute,
	})
	defer host.Close(ctx)

	shell := model.NewShellModel(ctx, model.ShellDeps{
		LoadSchema: usecase.NewLoadSchemaUseCase(source),
		Builder:    usecase.NewNavigationTreeBuilder(),
		Host:       host,
		Icons:      dispatcher,
		Events:     queue,
		Catalog:    a.Catalog,
		Theme:      a.Theme,
		IconSize:   cfg.Appearance.IconSize,
	})

	log.Info().Str("source", schema.Origin(source)).Msg("starting shell")
	p := tea.NewProgram(shell, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	log.Info().Msg("shell exited")
	return nil
}

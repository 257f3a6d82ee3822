package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/schema"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table built from the navigation document",
	Long: `Fetch the navigation document and print every tab with its stack routes.

Declared routes come from the document screens; the List, WebView and
Dynamic fallbacks exist in every stack. Duplicate names are reported
after the table (the last declaration wins).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		return printRoutes(app.Ctx(), cmd.OutOrStdout(), app.Source(sourceOpts), app.Theme)
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func printRoutes(ctx context.Context, w io.Writer, source port.SchemaSource, theme *styles.Theme) error {
	doc, err := usecase.NewLoadSchemaUseCase(source).Execute(ctx)
	if err != nil {
		return err
	}

	tree, err := usecase.NewNavigationTreeBuilder().Build(ctx, doc)
	if errors.Is(err, entity.ErrNoTabs) {
		_, err = fmt.Fprintln(w, theme.Subtle.Render("The document declares no tabs."))
		return err
	}
	if err != nil {
		return err
	}

	if origin := schema.Origin(source); origin != "" {
		if _, err := fmt.Fprintln(w, theme.Subtle.Render("source: "+origin)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprint(w, styles.NewRoutesRenderer(theme).Render(tree))
	return err
}

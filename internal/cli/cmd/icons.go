package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/icons"
)

var iconsCmd = &cobra.Command{
	Use:   "icons [family]",
	Short: "List the glyph names each icon family resolves",
	Long: `List the glyph names a document may use in "icon" fields.

Without an argument every family is printed. Ionicons also accept the md-,
ios- and logo- prefixes and the -outline and -sharp suffixes; FontAwesome
accepts a fa- prefix.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		family := ""
		if len(args) == 1 {
			family = args[0]
		}
		theme := styles.NewTheme(nil)
		if app := GetApp(); app != nil {
			theme = app.Theme
		}
		return printIcons(cmd.OutOrStdout(), family, theme)
	},
}

func init() {
	rootCmd.AddCommand(iconsCmd)
}

func printIcons(w io.Writer, family string, theme *styles.Theme) error {
	want := entity.IconFamilyUnknown
	if family != "" {
		if want = entity.ParseIconFamily(family); want == entity.IconFamilyUnknown {
			return fmt.Errorf("unknown icon family %q", family)
		}
	}

	for _, p := range icons.Providers() {
		if want != entity.IconFamilyUnknown && p.Family() != want {
			continue
		}
		names := p.Names()
		if _, err := fmt.Fprintf(w, "%s %s\n  %s\n",
			theme.Title.Render(p.Family().String()),
			theme.Subtle.Render(fmt.Sprintf("(%d)", len(names))),
			strings.Join(names, ", "),
		); err != nil {
			return err
		}
	}
	return nil
}

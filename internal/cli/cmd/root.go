// Package cmd provides Cobra CLI commands for tabshell.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli"
)

var (
	app        *cli.App
	sourceOpts cli.SourceOptions
	version    = "dev"
	rootCmd    = &cobra.Command{
		Use:   "tabshell",
		Short: "A terminal navigation shell driven by a remote JSON document",
		Long: `Tabshell - tabs, stacks and screens described by data, not code.

The navigation document is fetched at startup from the configured endpoint
(or read from a local JSON/YAML file). Each tab holds a stack of screens;
a screen is a list of items, an embedded web page rendered as text, or a
plain text body. List items may point at further lists, pages or texts.

Keys:
  ↑/↓ j/k     move             enter/→     open
  esc/←       back             tab/S-tab   switch tab
  1-9 enter   follow page link q           quit`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runShell,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&sourceOpts.File, "file", "f", "", "read the navigation document from a local JSON or YAML file")
	rootCmd.PersistentFlags().StringVarP(&sourceOpts.Endpoint, "endpoint", "e", "", "fetch the navigation document from this URL")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func runShell(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return app.RunShell(sourceOpts)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the navigation shell",
	Long: `Fetch the navigation document and open the shell.

Examples:
  tabshell run
  tabshell run --file ./navigation.yaml
  tabshell run --endpoint http://localhost:8080/api.php`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "tabshell", version)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

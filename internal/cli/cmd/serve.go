package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/cli"
	"github.com/bnema/tabshell/internal/infrastructure/devserver"
	"github.com/bnema/tabshell/internal/logging"
)

var (
	serveAddr  string
	servePages string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a local navigation document for development",
	Long: `Serve a navigation document over HTTP so the shell can be pointed at it.

The document is read from --file on every request, so edits show up on
the next shell start. Static pages for webview screens can be served
from --pages under /pages/.

Examples:
  tabshell serve --file ./navigation.yaml
  tabshell run --endpoint http://localhost:8080/api.php`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080", "listen address")
	serveCmd.Flags().StringVar(&servePages, "pages", "", "directory served under /pages/")
}

func runServe(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if sourceOpts.File == "" {
		return fmt.Errorf("serve needs --file")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Requests are logged to stderr as well as to the log file.
	logger := logging.NewFromEnv()
	ctx = logging.WithContext(ctx, logger)

	srv := devserver.New(app.Source(cli.SourceOptions{File: sourceOpts.File}), servePages, logger)
	fmt.Fprintf(cmd.OutOrStdout(), "serving %s on http://%s%s\n", sourceOpts.File, serveAddr, devserver.DocumentPath)

	if err := srv.ListenAndServe(ctx, serveAddr); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

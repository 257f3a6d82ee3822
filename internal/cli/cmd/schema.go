package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabshell/internal/infrastructure/config"
)

var schemaOfConfig bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the navigation document",
	Long: `Print the JSON Schema describing the navigation document (tabs, screens,
items and targets). Editors can use it to validate hand-written documents.

With --config the schema of the tabshell config file is printed instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		generate := config.DocumentSchema
		if schemaOfConfig {
			generate = config.ConfigSchema
		}
		data, err := generate()
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaOfConfig, "config", false, "print the config file schema")
}

// Package cmd implements the CLI commands for avito-client.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	output  string
)

var rootCmd = &cobra.Command{
	Use:   "avito-client",
	Short: "Work with the Avito messenger and account APIs",
	Long: "avito-client talks to the Avito REST API on behalf of one account. It can\n" +
		"inspect the account, read and answer chats, manage webhook subscriptions,\n" +
		"and run a webhook receiver that forwards new messages to Discord.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&output, "output", "table", "output format (table, json)")

	rootCmd.AddCommand(
		serveCommand(),
		versionCommand(),
		selfCommand(),
		balanceCommand(),
		ratingCommand(),
		operationsCommand(),
		tokenCommand(),
		chatsCommand(),
		webhookCommand(),
	)
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func jsonOutput() bool {
	return output == "json"
}

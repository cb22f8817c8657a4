package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/avito-client/internal/avito"
)

func webhookCommand() *cobra.Command {
	webhookRoot := &cobra.Command{
		Use:   "webhook",
		Short: "Manage messenger webhook subscriptions",
		Long: "Avito delivers new messenger events to subscribed webhook URLs. The serve\n" +
			"command keeps webhook.public_url subscribed; these commands manage\n" +
			"subscriptions by hand.",
	}

	webhookRoot.AddCommand(
		webhookListCmd(),
		webhookSetCmd(),
		webhookUnsubscribeCmd(),
	)

	return webhookRoot
}

func webhookListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhook subscriptions",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			subs, err := s.client.Subscriptions(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), subs.Subscriptions)
			}
			if len(subs.Subscriptions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No webhook subscriptions.")
				return nil
			}
			return printSubscriptions(cmd.OutOrStdout(), subs.Subscriptions)
		}),
	}
}

func webhookSetCmd() *cobra.Command {
	var unsubscribeAll bool

	setCmd := &cobra.Command{
		Use:     "set <url>",
		Short:   "Subscribe a webhook URL",
		Example: `  avito-client webhook set https://bot.example.com/api/v1/webhook/my-client-id --unsubscribe-all`,
		Args:    cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			ok, err := s.client.SetWebhook(cmd.Context(), args[0], unsubscribeAll)
			if err != nil {
				return err
			}
			return reportOK(cmd, ok, "Webhook %s subscribed.\n", args[0])
		}),
	}
	setCmd.Flags().BoolVar(&unsubscribeAll, "unsubscribe-all", false, "remove existing subscriptions first")

	return setCmd
}

func webhookUnsubscribeCmd() *cobra.Command {
	var all bool

	unsubscribeCmd := &cobra.Command{
		Use:   "unsubscribe [url]",
		Short: "Remove a webhook subscription",
		Example: `  avito-client webhook unsubscribe https://bot.example.com/api/v1/webhook/my-client-id
  avito-client webhook unsubscribe --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			if all == (len(args) == 1) {
				return errors.New("give either a URL or --all")
			}

			if all {
				removed, err := s.client.UnsubscribeAll(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d subscription(s).\n", len(removed.Subscriptions))
				return nil
			}

			ok, err := avito.Call(cmd.Context(), s.client, avito.PostWebhookUnsubscribe{URL: args[0]})
			if err != nil {
				return fmt.Errorf("unsubscribing %s: %w", args[0], err)
			}
			return reportOK(cmd, &ok, "Webhook %s unsubscribed.\n", args[0])
		}),
	}
	unsubscribeCmd.Flags().BoolVar(&all, "all", false, "remove every subscription")

	return unsubscribeCmd
}

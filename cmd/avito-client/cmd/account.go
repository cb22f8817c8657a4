package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/avito-client/internal/avito"
)

// withSession runs fn against a fresh session and closes it afterwards.
func withSession(fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return errors.Join(fn(cmd, args, s), s.Close())
	}
}

func selfCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "self",
		Short: "Show the authenticated account",
		Example: `  avito-client self
  avito-client self --output json`,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			me, err := s.client.SelfInfo(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), me)
			}
			return printSelf(cmd.OutOrStdout(), me)
		}),
	}
}

func balanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance",
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			b, err := s.client.SelfBalance(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), b)
			}
			return printBalance(cmd.OutOrStdout(), b)
		}),
	}
}

func ratingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rating",
		Short: "Show the account rating",
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			r, err := s.client.SelfRating(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), r)
			}
			return printRating(cmd.OutOrStdout(), r)
		}),
	}
}

func operationsCommand() *cobra.Command {
	var since time.Duration

	operationsCmd := &cobra.Command{
		Use:   "operations",
		Short: "List paid operations",
		Long:  "Lists paid operations (promotions, placements, tariffs) over a recent window.",
		Example: `  avito-client operations
  avito-client operations --since 720h`,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			if since <= 0 {
				return fmt.Errorf("--since must be positive (got %s)", since)
			}
			to := time.Now()
			history, err := avito.Call(cmd.Context(), s.client, avito.GetOperationsHistory{
				DateTimeFrom: to.Add(-since),
				DateTimeTo:   to,
			})
			if err != nil {
				return fmt.Errorf("listing operations: %w", err)
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), history.Operations)
			}
			if len(history.Operations) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No operations found.")
				return nil
			}
			return printOperations(cmd.OutOrStdout(), history.Operations)
		}),
	}
	operationsCmd.Flags().DurationVar(&since, "since", 7*24*time.Hour, "how far back to list operations")

	return operationsCmd
}

func tokenCommand() *cobra.Command {
	tokenRoot := &cobra.Command{
		Use:   "token",
		Short: "Acquire and inspect access tokens",
		Long: "Acquire access tokens with the configured credentials. Tokens are never\n" +
			"printed unless --show is given.",
	}

	var show bool
	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Acquire a fresh token",
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			t, err := s.client.RefreshToken(cmd.Context())
			if err != nil {
				return err
			}
			return reportToken(cmd, s, t, show)
		}),
	}
	refreshCmd.Flags().BoolVar(&show, "show", false, "print the access token")

	var code string
	exchangeCmd := &cobra.Command{
		Use:     "exchange",
		Short:   "Exchange an OAuth authorization code for a token pair",
		Example: `  avito-client token exchange --code 1a2b3c --show`,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			t, err := s.client.ExchangeCode(cmd.Context(), code)
			if err != nil {
				return err
			}
			return reportToken(cmd, s, t, show)
		}),
	}
	exchangeCmd.Flags().StringVar(&code, "code", "", "authorization code from the OAuth redirect")
	exchangeCmd.Flags().BoolVar(&show, "show", false, "print the access and refresh tokens")
	_ = exchangeCmd.MarkFlagRequired("code")

	tokenRoot.AddCommand(refreshCmd, exchangeCmd)
	return tokenRoot
}

func reportToken(cmd *cobra.Command, s *session, t *avito.Token, show bool) error {
	w := cmd.OutOrStdout()
	if show {
		if jsonOutput() {
			return outputJSON(w, t)
		}
		fmt.Fprintln(w, "Access token:\t"+t.AccessToken)
		if t.RefreshToken != "" {
			fmt.Fprintln(w, "Refresh token:\t"+t.RefreshToken)
		}
	}
	return printToken(w, s.client.TokenState(), t)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/avito-client/internal/api/client"
)

// status is the combined view printed by the status command.
type status struct {
	Self    *apiclient.Self        `json:"self"`
	Balance *apiclient.Balance     `json:"balance"`
	Rating  *apiclient.Rating      `json:"rating"`
	Token   *apiclient.TokenStatus `json:"token"`
	Quota   *apiclient.Quota       `json:"quota"`
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show account, token and quota status",
		Example: `  avitoctl status
  avitoctl status --server http://bot.internal:8080 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := fetchStatus(cmd.Context(), newClient())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), st)
			}
			return printStatus(cmd.OutOrStdout(), st)
		},
	}
}

func fetchStatus(ctx context.Context, c *apiclient.Client) (*status, error) {
	var (
		st  status
		err error
	)
	if st.Self, err = c.Self(ctx); err != nil {
		return nil, fmt.Errorf("getting self: %w", err)
	}
	if st.Balance, err = c.Balance(ctx); err != nil {
		return nil, fmt.Errorf("getting balance: %w", err)
	}
	if st.Rating, err = c.Rating(ctx); err != nil {
		return nil, fmt.Errorf("getting rating: %w", err)
	}
	if st.Token, err = c.Token(ctx); err != nil {
		return nil, fmt.Errorf("getting token state: %w", err)
	}
	if st.Quota, err = c.Quota(ctx); err != nil {
		return nil, fmt.Errorf("getting quota: %w", err)
	}
	return &st, nil
}

func selfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self",
		Short: "Show the account the server acts for",
		RunE: func(cmd *cobra.Command, _ []string) error {
			me, err := newClient().Self(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), me)
			}
			return printSelf(cmd.OutOrStdout(), me)
		},
	}
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the daily API call budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().Quota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), q)
			}
			return printQuota(cmd.OutOrStdout(), q)
		},
	}
}

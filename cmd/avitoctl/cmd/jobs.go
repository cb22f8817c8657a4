package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "List and trigger scheduled jobs",
		Long: "List the server's scheduled jobs (webhook_check, balance, unread_digest)\n" +
			"and run one immediately.",
	}

	jobsRoot.AddCommand(
		jobsListCmd(),
		jobsRunCmd(),
	)

	return jobsRoot
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scheduled jobs",
		Example: `  avitoctl jobs list
  avitoctl jobs list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, err := newClient().ListJobs(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), jobs)
			}
			if len(jobs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No jobs found.")
				return nil
			}
			return printJobsTable(cmd.OutOrStdout(), jobs)
		},
	}
}

func jobsRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <job_name>",
		Short: "Run a scheduled job now",
		Args:  cobra.ExactArgs(1),
		Example: `  avitoctl jobs run webhook_check
  avitoctl jobs run unread_digest`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newClient().RunJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], st)
			return nil
		},
	}
}

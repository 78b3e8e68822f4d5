package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "insightly",
		Short:         "Insightly CLI: daily analytics issues from GA4, Meta and Clarity",
		Long:          "insightly shows the issues Insightly found in your analytics today, lets you snooze or resolve them, browse history, and manage integrations and local preferences from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newIssuesCmd(app),
		newInsightCmd(app),
		newHistoryCmd(app),
		newDashboardCmd(app),
		newIntegrationsCmd(app),
		newPrefsCmd(app),
	)

	return rootCmd
}

package cmd

import (
	"github.com/spf13/cobra"

	insightsrender "github.com/bnema/insightly-cli/internal/adapters/render/insights"
)

func newDashboardCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the aggregate dashboard summary",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			summary, err := fetchWithSpinner(cmd, "Fetching dashboard...", asJSON, app.insights.DashboardSummary)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			rendered, renderErr := insightsrender.RenderDashboard(*summary)
			return writeRendered(cmd.OutOrStdout(), rendered, renderErr)
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

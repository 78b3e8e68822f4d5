package cmd

import (
	"context"

	"github.com/spf13/cobra"

	insightsrender "github.com/bnema/insightly-cli/internal/adapters/render/insights"
	"github.com/bnema/insightly-cli/internal/application"
	"github.com/bnema/insightly-cli/internal/domain"
)

func newInsightCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Inspect one insight and change its status",
	}

	cmd.AddCommand(
		newInsightShowCmd(app),
		newInsightSnoozeCmd(app),
		newInsightStatusCmd(app, "resolve", "Mark an insight as resolved", domain.StatusResolved),
		newInsightStatusCmd(app, "reactivate", "Make a snoozed or resolved insight active again", domain.StatusActive),
	)

	return cmd
}

func newInsightShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show an insight with its metrics, Clarity signals and recordings",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			id, err := parseInsightID(args[0])
			if err != nil {
				return err
			}

			detail, err := fetchWithSpinner(cmd, "Fetching insight...", asJSON, func(ctx context.Context) (*domain.InsightDetail, error) {
				return app.insights.Detail(ctx, id)
			})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), detail)
			}
			rendered, renderErr := insightsrender.RenderDetail(*detail, insightsrender.RenderOptions{Now: app.now()})
			return writeRendered(cmd.OutOrStdout(), rendered, renderErr)
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newInsightSnoozeCmd(app *app) *cobra.Command {
	var hours int
	var show bool

	cmd := &cobra.Command{
		Use:   "snooze <id>",
		Short: "Hide an insight for a number of hours",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			return updateInsightStatus(cmd, app, args[0], domain.StatusSnoozed, application.StatusOptions{SnoozedHours: hours}, show)
		}),
	}

	cmd.Flags().IntVar(&hours, "hours", application.DefaultSnoozeHours, "Snooze duration in hours")
	cmd.Flags().BoolVar(&show, "show", false, "Load the insight first and print it after the change")

	return cmd
}

func newInsightStatusCmd(app *app, use, short string, status domain.InsightStatus) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			return updateInsightStatus(cmd, app, args[0], status, application.StatusOptions{}, show)
		}),
	}

	cmd.Flags().BoolVar(&show, "show", false, "Load the insight first and print it after the change")

	return cmd
}

// updateInsightStatus changes the status of one insight. With show the detail
// is loaded first, so the change is applied to it optimistically and the
// server's record is printed once confirmed.
func updateInsightStatus(cmd *cobra.Command, app *app, rawID string, status domain.InsightStatus, opts application.StatusOptions, show bool) error {
	id, err := parseInsightID(rawID)
	if err != nil {
		return err
	}

	if show {
		if _, err := fetchWithSpinner(cmd, "Fetching insight...", false, func(ctx context.Context) (*domain.InsightDetail, error) {
			return app.insights.Detail(ctx, id)
		}); err != nil {
			return err
		}
	}

	if _, err := app.coordinator.UpdateStatus(cmd.Context(), id, status, opts); err != nil {
		app.notices.Error("Failed to update status")
		return err
	}

	app.notices.Success(application.StatusMessage(status, opts.SnoozedHours))
	if !show {
		return nil
	}

	detail, ok := app.insights.CachedDetail(id)
	if !ok {
		return nil
	}
	rendered, renderErr := insightsrender.RenderDetail(*detail, insightsrender.RenderOptions{Now: app.now()})
	return writeRendered(cmd.OutOrStdout(), rendered, renderErr)
}

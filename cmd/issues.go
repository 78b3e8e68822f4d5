package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/insightly-cli/internal/adapters/httpapi"
	insightsrender "github.com/bnema/insightly-cli/internal/adapters/render/insights"
	"github.com/bnema/insightly-cli/internal/application"
	"github.com/bnema/insightly-cli/internal/domain"
)

func newIssuesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "Show today's issues",
	}

	cmd.AddCommand(newIssuesTodayCmd(app), newIssuesWatchCmd(app))

	return cmd
}

type issueFilter struct {
	search   string
	severity string
}

func (f issueFilter) apply(today domain.TodaysIssues) (domain.TodaysIssues, error) {
	insights := application.SearchInsights(today.Insights, f.search)
	if f.severity != "" {
		severity, err := domain.ParseSeverity(f.severity)
		if err != nil {
			return domain.TodaysIssues{}, err
		}
		insights = application.FilterBySeverity(insights, severity)
	}
	today.Insights = insights
	return today, nil
}

func newIssuesTodayCmd(app *app) *cobra.Command {
	var asJSON bool
	var filter issueFilter

	cmd := &cobra.Command{
		Use:   "today",
		Short: "List the issues detected today",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			today, err := fetchWithSpinner(cmd, "Fetching today's issues...", asJSON, app.insights.TodaysIssues)
			if err != nil {
				return err
			}

			filtered, err := filter.apply(*today)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), filtered)
			}
			rendered, renderErr := insightsrender.RenderToday(filtered, insightsrender.RenderOptions{Now: app.now()})
			return writeRendered(cmd.OutOrStdout(), rendered, renderErr)
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().StringVar(&filter.search, "search", "", "Only show issues whose title or explanation contains this text")
	cmd.Flags().StringVar(&filter.severity, "severity", "", "Only show issues of this severity (low|medium|high)")

	return cmd
}

func newIssuesWatchCmd(app *app) *cobra.Command {
	var interval time.Duration
	var iterations int
	var filter issueFilter

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Refresh today's issues on an interval",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}
			return watchToday(cmd, app, interval, iterations, filter)
		}),
	}

	cmd.Flags().DurationVar(&interval, "interval", application.StaleToday, "Refresh interval")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Stop after this many refreshes (0: until interrupted)")
	cmd.Flags().StringVar(&filter.search, "search", "", "Only show issues whose title or explanation contains this text")
	cmd.Flags().StringVar(&filter.severity, "severity", "", "Only show issues of this severity (low|medium|high)")

	return cmd
}

func watchToday(cmd *cobra.Command, app *app, interval time.Duration, iterations int, filter issueFilter) error {
	ctx := cmd.Context()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; iterations == 0 || i < iterations; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}

		today, err := app.insights.RefreshToday(ctx)
		app.flushNotices(cmd)
		if err != nil {
			if errors.Is(err, httpapi.ErrSessionExpired) || errors.Is(err, domain.ErrNotAuthenticated) {
				return err
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "refresh failed: %v\n", err)
			continue
		}

		filtered, err := filter.apply(*today)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "updated %s\n", app.now().Format("15:04:05"))
		rendered, renderErr := insightsrender.RenderToday(filtered, insightsrender.RenderOptions{Now: app.now()})
		if err := writeRendered(out, rendered, renderErr); err != nil {
			return err
		}
	}

	return nil
}

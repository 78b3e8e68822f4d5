package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	insightsrender "github.com/bnema/insightly-cli/internal/adapters/render/insights"
	"github.com/bnema/insightly-cli/internal/application"
	"github.com/bnema/insightly-cli/internal/domain"
)

type historyOptions struct {
	days     int
	severity string
	status   string
	search   string
	asJSON   bool
	asCSV    bool
	output   string
}

func (o historyOptions) filter() (domain.HistoryFilter, error) {
	filter := domain.HistoryFilter{Days: o.days}
	if o.severity != "" {
		severity, err := domain.ParseSeverity(o.severity)
		if err != nil {
			return domain.HistoryFilter{}, err
		}
		filter.Severity = severity
	}
	if o.status != "" {
		status, err := domain.ParseInsightStatus(o.status)
		if err != nil {
			return domain.HistoryFilter{}, err
		}
		filter.Status = status
	}
	return filter, nil
}

func newHistoryCmd(app *app) *cobra.Command {
	var opts historyOptions

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past insights and export them as CSV",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			filter, err := opts.filter()
			if err != nil {
				return err
			}

			quiet := opts.asJSON || (opts.asCSV && opts.output == "")
			history, err := fetchWithSpinner(cmd, "Fetching history...", quiet, func(ctx context.Context) (*domain.InsightHistory, error) {
				return app.insights.History(ctx, filter)
			})
			if err != nil {
				return err
			}

			result := *history
			result.Insights = application.SearchInsights(history.Insights, opts.search)

			switch {
			case opts.asCSV:
				return exportHistoryCSV(cmd, app, result.Insights, opts.output)
			case opts.asJSON:
				return writeJSON(cmd.OutOrStdout(), result)
			default:
				rendered, renderErr := insightsrender.RenderHistory(result, insightsrender.RenderOptions{Now: app.now()})
				return writeRendered(cmd.OutOrStdout(), rendered, renderErr)
			}
		}),
	}

	cmd.Flags().IntVar(&opts.days, "days", application.DefaultHistoryDays, "Number of days to look back")
	cmd.Flags().StringVar(&opts.severity, "severity", "", "Filter by severity (low|medium|high)")
	cmd.Flags().StringVar(&opts.status, "status", "", "Filter by status (active|snoozed|resolved)")
	cmd.Flags().StringVar(&opts.search, "search", "", "Only keep insights whose title or explanation contains this text")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&opts.asCSV, "csv", false, "Export as CSV (stdout unless --output is set)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "CSV file path; a directory gets the default insights-YYYY-MM-DD.csv name")
	cmd.MarkFlagsMutuallyExclusive("json", "csv")

	return cmd
}

func exportHistoryCSV(cmd *cobra.Command, app *app, insights []domain.Insight, output string) error {
	if output == "" {
		return application.WriteHistoryCSV(cmd.OutOrStdout(), insights)
	}

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		output = filepath.Join(output, app.insights.HistoryFileName())
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	if err := application.WriteHistoryCSV(file, insights); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close csv file: %w", err)
	}

	app.notices.Success(fmt.Sprintf("Exported %d insights to %s", len(insights), output))
	return nil
}

package ports

import (
	"context"

	"github.com/bnema/insightly-cli/internal/domain"
)

type InsightAPI interface {
	TodaysIssues(ctx context.Context) (domain.TodaysIssues, error)
	InsightDetail(ctx context.Context, id domain.InsightID) (domain.InsightDetail, error)
	UpdateInsightStatus(ctx context.Context, id domain.InsightID, update domain.StatusUpdate) (domain.Insight, error)
	InsightHistory(ctx context.Context, filter domain.HistoryFilter) (domain.InsightHistory, error)
	DashboardSummary(ctx context.Context) (domain.DashboardSummary, error)
}

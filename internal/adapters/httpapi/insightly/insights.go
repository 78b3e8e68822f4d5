package insightly

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/bnema/insightly-cli/internal/domain"
)

func (a *API) TodaysIssues(ctx context.Context) (domain.TodaysIssues, error) {
	return get[domain.TodaysIssues](ctx, a, "/insights/today/", nil)
}

func (a *API) InsightDetail(ctx context.Context, id domain.InsightID) (domain.InsightDetail, error) {
	return get[domain.InsightDetail](ctx, a, fmt.Sprintf("/insights/%d/", id), nil)
}

func (a *API) UpdateInsightStatus(ctx context.Context, id domain.InsightID, update domain.StatusUpdate) (domain.Insight, error) {
	if err := update.Validate(); err != nil {
		return domain.Insight{}, err
	}
	return patch[domain.Insight](ctx, a, fmt.Sprintf("/insights/%d/status/", id), update)
}

func (a *API) InsightHistory(ctx context.Context, filter domain.HistoryFilter) (domain.InsightHistory, error) {
	return get[domain.InsightHistory](ctx, a, "/insights/history/", historyQuery(filter))
}

func (a *API) DashboardSummary(ctx context.Context) (domain.DashboardSummary, error) {
	return get[domain.DashboardSummary](ctx, a, "/dashboard/summary/", nil)
}

func historyQuery(filter domain.HistoryFilter) url.Values {
	query := url.Values{}
	if filter.Days > 0 {
		query.Set("days", strconv.Itoa(filter.Days))
	}
	if filter.Severity != "" {
		query.Set("severity", string(filter.Severity))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	return query
}

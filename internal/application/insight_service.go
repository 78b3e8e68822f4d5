package application

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/insightly-cli/internal/domain"
	"github.com/bnema/insightly-cli/internal/ports"
	"github.com/bnema/insightly-cli/internal/querycache"
)

// HistoryCSVHeader is the first row of an exported history file.
var HistoryCSVHeader = []string{"Title", "Severity", "Status", "Source", "Created At"}

const (
	DefaultHistoryDays = 7

	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

type InsightService struct {
	api   ports.InsightAPI
	cache *querycache.Cache
	clock ports.Clock
}

func NewInsightService(api ports.InsightAPI, cache *querycache.Cache, clock ports.Clock) *InsightService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &InsightService{api: api, cache: cache, clock: clock}
}

func (s *InsightService) TodaysIssues(ctx context.Context) (*domain.TodaysIssues, error) {
	return querycache.Fetch(ctx, s.cache, KeyToday, StaleToday, func(ctx context.Context) (*domain.TodaysIssues, error) {
		today, err := s.api.TodaysIssues(ctx)
		if err != nil {
			return nil, err
		}
		return &today, nil
	})
}

// RefreshToday drops the freshness of today's list and reads it again.
func (s *InsightService) RefreshToday(ctx context.Context) (*domain.TodaysIssues, error) {
	s.cache.Invalidate(KeyToday)
	return s.TodaysIssues(ctx)
}

func (s *InsightService) Detail(ctx context.Context, id domain.InsightID) (*domain.InsightDetail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid insight id %d", id)
	}

	return querycache.Fetch(ctx, s.cache, DetailKey(id), StaleDetail, func(ctx context.Context) (*domain.InsightDetail, error) {
		detail, err := s.api.InsightDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		return &detail, nil
	})
}

// CachedDetail returns the detail held in the cache for id, stale or not,
// without reading from the API.
func (s *InsightService) CachedDetail(id domain.InsightID) (*domain.InsightDetail, bool) {
	detail, ok := querycache.Value[*domain.InsightDetail](s.cache, DetailKey(id))
	return detail, ok && detail != nil
}

func (s *InsightService) History(ctx context.Context, filter domain.HistoryFilter) (*domain.InsightHistory, error) {
	if filter.Days == 0 {
		filter.Days = DefaultHistoryDays
	}
	if filter.Days < 0 {
		return nil, fmt.Errorf("days must be positive, got %d", filter.Days)
	}

	return querycache.Fetch(ctx, s.cache, HistoryKey(filter), StaleHistory, func(ctx context.Context) (*domain.InsightHistory, error) {
		history, err := s.api.InsightHistory(ctx, filter)
		if err != nil {
			return nil, err
		}
		return &history, nil
	})
}

func (s *InsightService) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	return querycache.Fetch(ctx, s.cache, KeyDashboard, StaleDashboard, func(ctx context.Context) (*domain.DashboardSummary, error) {
		summary, err := s.api.DashboardSummary(ctx)
		if err != nil {
			return nil, err
		}
		return &summary, nil
	})
}

// SearchInsights keeps the insights whose title or explanation contains
// query, ignoring case. An empty query keeps everything.
func SearchInsights(insights []domain.Insight, query string) []domain.Insight {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return insights
	}

	matched := make([]domain.Insight, 0, len(insights))
	for _, insight := range insights {
		if strings.Contains(strings.ToLower(insight.Title), query) ||
			strings.Contains(strings.ToLower(insight.Explanation), query) {
			matched = append(matched, insight)
		}
	}
	return matched
}

func FilterBySeverity(insights []domain.Insight, severity domain.Severity) []domain.Insight {
	if severity == "" {
		return insights
	}

	matched := make([]domain.Insight, 0, len(insights))
	for _, insight := range insights {
		if insight.Severity == severity {
			matched = append(matched, insight)
		}
	}
	return matched
}

// HistoryFileName is the default export name for the current day.
func (s *InsightService) HistoryFileName() string {
	return fmt.Sprintf("insights-%s.csv", s.clock.Now().Format(time.DateOnly))
}

// WriteHistoryCSV writes insights as CSV with HistoryCSVHeader as the first
// row. Creation times are ISO 8601 in UTC with millisecond precision.
func WriteHistoryCSV(w io.Writer, insights []domain.Insight) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(HistoryCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, insight := range insights {
		row := []string{
			insight.Title,
			string(insight.Severity),
			string(insight.Status),
			string(insight.Source),
			insight.CreatedAt.UTC().Format(isoMillis),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row for insight %d: %w", insight.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

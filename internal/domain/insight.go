package domain

import (
	"fmt"
	"strings"
	"time"
)

type InsightID int64

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func ParseSeverity(raw string) (Severity, error) {
	severity := Severity(strings.ToLower(strings.TrimSpace(raw)))
	switch severity {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return severity, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSeverity, raw)
	}
}

type InsightStatus string

const (
	StatusActive   InsightStatus = "active"
	StatusSnoozed  InsightStatus = "snoozed"
	StatusResolved InsightStatus = "resolved"
)

func ParseInsightStatus(raw string) (InsightStatus, error) {
	status := InsightStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case StatusActive, StatusSnoozed, StatusResolved:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

type InsightSource string

const (
	SourceGA4     InsightSource = "ga4"
	SourceMeta    InsightSource = "meta"
	SourceClarity InsightSource = "clarity"
)

type Insight struct {
	ID                InsightID      `json:"id"`
	Date              string         `json:"date"`
	Severity          Severity       `json:"severity"`
	Title             string         `json:"title"`
	Source            InsightSource  `json:"source"`
	Explanation       string         `json:"explanation"`
	RecommendedAction string         `json:"recommended_action"`
	Metadata          map[string]any `json:"metadata,omitempty"`
	Status            InsightStatus  `json:"status"`
	SnoozedUntil      *time.Time     `json:"snoozed_until,omitempty"`
	ResolvedAt        *time.Time     `json:"resolved_at,omitempty"`
	GAProperty        int64          `json:"ga_property"`
	GAPropertyName    string         `json:"ga_property_name"`
	CreatedAt         time.Time      `json:"created_at"`
}

// WithStatus returns a copy of the insight carrying status. Metadata is shared.
func (i Insight) WithStatus(status InsightStatus) Insight {
	i.Status = status
	return i
}

type TodaysIssues struct {
	Insights    []Insight `json:"insights"`
	Count       int       `json:"count"`
	LastWeekAvg float64   `json:"last_week_avg"`
	Date        string    `json:"date"`
}

// WithInsightStatus returns a copy whose entry matching id carries status.
// Order and every other entry are preserved.
func (t TodaysIssues) WithInsightStatus(id InsightID, status InsightStatus) TodaysIssues {
	insights := make([]Insight, len(t.Insights))
	for i, insight := range t.Insights {
		if insight.ID == id {
			insight = insight.WithStatus(status)
		}
		insights[i] = insight
	}
	t.Insights = insights
	return t
}

type DailyMetric struct {
	ID          int64         `json:"id"`
	Date        string        `json:"date"`
	Source      InsightSource `json:"source"`
	SourceName  string        `json:"source_name"`
	Sessions    int64         `json:"sessions"`
	Conversions int64         `json:"conversions"`
	Revenue     float64       `json:"revenue"`
	Spend       float64       `json:"spend"`
	PagePath    string        `json:"page_path,omitempty"`
	IsAnomaly   bool          `json:"is_anomaly"`
	AnomalyType string        `json:"anomaly_type,omitempty"`
}

type ClaritySignal struct {
	ID         int64    `json:"id"`
	Date       string   `json:"date"`
	PagePath   string   `json:"page_path"`
	RageClicks int64    `json:"rage_clicks"`
	DeadClicks int64    `json:"dead_clicks"`
	SessionIDs []string `json:"session_ids"`
}

type SessionRecording struct {
	SessionID string `json:"session_id"`
	PagePath  string `json:"page_path"`
	URL       string `json:"url"`
}

type InsightDetail struct {
	Insight        Insight            `json:"insight"`
	Metrics        []DailyMetric      `json:"metrics"`
	ClaritySignals []ClaritySignal    `json:"clarity_signals"`
	Recordings     []SessionRecording `json:"recordings"`
}

type InsightHistory struct {
	Insights  []Insight `json:"insights"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

type HistoryFilter struct {
	Days     int
	Severity Severity
	Status   InsightStatus
}

type SeverityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type MetricTotals struct {
	Sessions       float64 `json:"sessions"`
	Conversions    float64 `json:"conversions"`
	Revenue        float64 `json:"revenue"`
	Spend          float64 `json:"spend"`
	ConversionRate float64 `json:"conversion_rate"`
}

type DashboardSummary struct {
	TodaysIssues      int               `json:"todays_issues"`
	WeekTotal         int               `json:"week_total"`
	SeverityBreakdown SeverityBreakdown `json:"severity_breakdown"`
	Metrics           MetricTotals      `json:"metrics"`
	MetricsChange     *MetricTotals     `json:"metrics_change,omitempty"`
	Date              string            `json:"date"`
}

// StatusUpdate is the body of an insight status change. SnoozedHours is only
// sent for snoozes.
type StatusUpdate struct {
	Status       InsightStatus `json:"status"`
	SnoozedHours int           `json:"snoozed_hours,omitempty"`
}

func (u StatusUpdate) Validate() error {
	if _, err := ParseInsightStatus(string(u.Status)); err != nil {
		return err
	}
	if u.SnoozedHours < 0 {
		return fmt.Errorf("snoozed hours must not be negative")
	}
	if u.SnoozedHours > 0 && u.Status != StatusSnoozed {
		return fmt.Errorf("snoozed hours only apply to status %q", StatusSnoozed)
	}
	return nil
}

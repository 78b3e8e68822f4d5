// Package insights renders insight reads for the terminal.
package insights

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/insightly-cli/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

func RenderToday(today domain.TodaysIssues, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render("Today's Issues"),
			s.header.Render(todayHeader(today)),
		}

		if len(today.Insights) == 0 {
			lines = append(lines, s.empty.Render("No issues today. Everything looks healthy."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, insight := range today.Insights {
			lines = append(lines, s.section.Render(insightSummary(insight, opts, s)))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func todayHeader(today domain.TodaysIssues) string {
	header := fmt.Sprintf("issues: %d", today.Count)
	if today.Date != "" {
		header = today.Date + "  " + header
	}
	if today.LastWeekAvg > 0 {
		header += fmt.Sprintf("  (last week avg %.1f)", today.LastWeekAvg)
	}
	return header
}

func insightSummary(insight domain.Insight, opts RenderOptions, s styles) string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.meta.Render(fmt.Sprintf("#%d", insight.ID)),
		" ",
		s.severityBadge(insight.Severity),
		" ",
		s.insight.Render(insight.Title),
	)

	meta := []string{s.statusLabel(insight.Status), sourceLabel(insight.Source)}
	if insight.Status == domain.StatusSnoozed && insight.SnoozedUntil != nil {
		meta = append(meta, "wakes "+formatRelative(*insight.SnoozedUntil, opts.Now))
	}
	if insight.GAPropertyName != "" {
		meta = append(meta, insight.GAPropertyName)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, s.meta.Render(strings.Join(meta, " · ")))
}

func RenderDetail(detail domain.InsightDetail, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		insight := detail.Insight
		lines := []string{insightSummary(insight, opts, s)}

		if insight.Explanation != "" {
			lines = append(lines, s.section.Render(labelled(s, "What happened", insight.Explanation)))
		}
		if insight.RecommendedAction != "" {
			lines = append(lines, s.section.Render(labelled(s, "Recommended action", insight.RecommendedAction)))
		}
		if insight.Status == domain.StatusResolved && insight.ResolvedAt != nil {
			lines = append(lines, s.meta.Render("resolved "+formatRelative(*insight.ResolvedAt, opts.Now)))
		}

		if len(detail.Metrics) > 0 {
			rows := make([]string, 0, len(detail.Metrics)+1)
			rows = append(rows, s.label.Render("Metrics"))
			for _, metric := range detail.Metrics {
				rows = append(rows, metricLine(metric, s))
			}
			lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
		}

		if len(detail.ClaritySignals) > 0 {
			rows := []string{s.label.Render("Clarity signals")}
			for _, signal := range detail.ClaritySignals {
				rows = append(rows, s.detail.Render(fmt.Sprintf("%s  %s  rage clicks %d, dead clicks %d",
					signal.Date, signal.PagePath, signal.RageClicks, signal.DeadClicks)))
			}
			lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
		}

		if len(detail.Recordings) > 0 {
			rows := []string{s.label.Render("Session recordings")}
			for _, recording := range detail.Recordings {
				rows = append(rows, s.detail.Render(fmt.Sprintf("%s  %s", recording.PagePath, recording.URL)))
			}
			lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func labelled(s styles, label, text string) string {
	return lipgloss.JoinVertical(lipgloss.Left, s.label.Render(label), s.detail.Render(text))
}

func metricLine(metric domain.DailyMetric, s styles) string {
	line := fmt.Sprintf("%s  %-8s sessions %d  conversions %d  revenue %.2f  spend %.2f",
		metric.Date, sourceLabel(metric.Source), metric.Sessions, metric.Conversions, metric.Revenue, metric.Spend)
	if metric.IsAnomaly {
		return s.detail.Render(line) + " " + s.warning.Render("[anomaly]")
	}
	return s.detail.Render(line)
}

func RenderHistory(history domain.InsightHistory, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		header := fmt.Sprintf("insights: %d", len(history.Insights))
		if history.StartDate != "" && history.EndDate != "" {
			header = fmt.Sprintf("%s to %s  %s", history.StartDate, history.EndDate, header)
		}
		lines := []string{s.title.Render("Insight History"), s.header.Render(header)}

		if len(history.Insights) == 0 {
			lines = append(lines, s.empty.Render("No insights match these filters."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, insight := range history.Insights {
			lines = append(lines, s.section.Render(insightSummary(insight, opts, s)))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderDashboard(summary domain.DashboardSummary) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render("Dashboard"),
			s.header.Render(fmt.Sprintf("today: %d issues  week: %d", summary.TodaysIssues, summary.WeekTotal)),
		}

		breakdown := summary.SeverityBreakdown
		total := breakdown.High + breakdown.Medium + breakdown.Low
		rows := []string{s.label.Render("Severity")}
		for _, item := range []struct {
			severity domain.Severity
			count    int
		}{
			{domain.SeverityHigh, breakdown.High},
			{domain.SeverityMedium, breakdown.Medium},
			{domain.SeverityLow, breakdown.Low},
		} {
			rows = append(rows, lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.severityBadge(item.severity),
				" ",
				renderShareBar(share(item.count, total), 24, s),
				" ",
				s.detail.Render(fmt.Sprintf("%d", item.count)),
			))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

		metrics := summary.Metrics
		change := summary.MetricsChange
		rows = []string{s.label.Render("Metrics")}
		rows = append(rows,
			metricTotal(s, "sessions", fmt.Sprintf("%.0f", metrics.Sessions), changeOf(change, func(m domain.MetricTotals) float64 { return m.Sessions })),
			metricTotal(s, "conversions", fmt.Sprintf("%.0f", metrics.Conversions), changeOf(change, func(m domain.MetricTotals) float64 { return m.Conversions })),
			metricTotal(s, "conversion rate", fmt.Sprintf("%.2f%%", metrics.ConversionRate), changeOf(change, func(m domain.MetricTotals) float64 { return m.ConversionRate })),
			metricTotal(s, "revenue", fmt.Sprintf("%.2f", metrics.Revenue), changeOf(change, func(m domain.MetricTotals) float64 { return m.Revenue })),
			metricTotal(s, "spend", fmt.Sprintf("%.2f", metrics.Spend), changeOf(change, func(m domain.MetricTotals) float64 { return m.Spend })),
		)
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func changeOf(change *domain.MetricTotals, pick func(domain.MetricTotals) float64) *float64 {
	if change == nil {
		return nil
	}
	v := pick(*change)
	return &v
}

func metricTotal(s styles, label, value string, change *float64) string {
	line := s.label.Render(fmt.Sprintf("%-16s", label)) + s.detail.Render(value)
	if change == nil {
		return line
	}
	switch {
	case *change > 0:
		return line + " " + s.up.Render(fmt.Sprintf("▲ %.1f%%", *change))
	case *change < 0:
		return line + " " + s.down.Render(fmt.Sprintf("▼ %.1f%%", math.Abs(*change)))
	default:
		return line + " " + s.meta.Render("0.0%")
	}
}

func share(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}

func renderShareBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	filled = max(0, min(filled, width))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func RenderIntegrations(accounts []domain.IntegrationAccount) (string, error) {
	return render(func(s styles) string {
		lines := []string{s.title.Render("Integrations")}
		if len(accounts) == 0 {
			lines = append(lines, s.empty.Render("No integrations connected. Run `insightly integrations connect`."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, account := range accounts {
			state := s.up.Render("active")
			if !account.IsActive {
				state = s.warning.Render("inactive")
			}
			lines = append(lines, lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.insight.Render(fmt.Sprintf("%-8s", account.Provider)),
				" ",
				s.detail.Render(account.Name),
				" ",
				s.meta.Render(account.ExternalAccountID),
				" ",
				state,
			))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderGAProperties(properties []domain.GAProperty) (string, error) {
	return render(func(s styles) string {
		lines := []string{s.title.Render("Google Analytics properties")}
		if len(properties) == 0 {
			lines = append(lines, s.empty.Render("No properties selected."))
		}
		for _, property := range properties {
			lines = append(lines, s.detail.Render(fmt.Sprintf("%s  %s", property.PropertyID, property.Name))+
				" "+s.meta.Render(property.WebsiteURL))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderMetaAccounts(accounts []domain.MetaAdAccount) (string, error) {
	return render(func(s styles) string {
		lines := []string{s.title.Render("Meta ad accounts")}
		if len(accounts) == 0 {
			lines = append(lines, s.empty.Render("No ad accounts selected."))
		}
		for _, account := range accounts {
			lines = append(lines, s.detail.Render(fmt.Sprintf("%s  %s", account.AdAccountID, account.Name))+
				" "+s.meta.Render(account.Currency))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func sourceLabel(source domain.InsightSource) string {
	switch source {
	case domain.SourceGA4:
		return "GA4"
	case domain.SourceMeta:
		return "Meta"
	case domain.SourceClarity:
		return "Clarity"
	case "":
		return "unknown"
	default:
		return string(source)
	}
}

func formatAt(at, now time.Time) string {
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := at.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return at.Format("15:04")
	}

	return at.Format("15:04 on 02 Jan")
}

func formatRelative(at, now time.Time) string {
	if now.IsZero() {
		return "at " + formatAt(at, now)
	}

	if at.Before(now) {
		elapsed := now.Sub(at)
		if elapsed < time.Hour {
			return "just now"
		}
		return fmt.Sprintf("%s ago (%s)", plural(elapsed), formatAt(at, now))
	}

	return fmt.Sprintf("in %s (%s)", plural(at.Sub(now)), formatAt(at, now))
}

func plural(d time.Duration) string {
	if d < 24*time.Hour {
		hours := max(int(math.Ceil(d.Hours())), 1)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}

	days := max(int(math.Ceil(d.Hours()/24)), 1)
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

package insights

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/insightly-cli/internal/domain"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	insight    lipgloss.Style
	detail     lipgloss.Style
	label      lipgloss.Style
	meta       lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	up         lipgloss.Style
	down       lipgloss.Style
	severity   map[domain.Severity]lipgloss.Style
	status     map[domain.InsightStatus]lipgloss.Style
}

func newStyles() styles {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		insight:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		up:         lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		down:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		severity: map[domain.Severity]lipgloss.Style{
			domain.SeverityHigh:   badge.Foreground(lipgloss.Color("203")),
			domain.SeverityMedium: badge.Foreground(lipgloss.Color("214")),
			domain.SeverityLow:    badge.Foreground(lipgloss.Color("39")),
		},
		status: map[domain.InsightStatus]lipgloss.Style{
			domain.StatusActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			domain.StatusSnoozed:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			domain.StatusResolved: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		},
	}
}

func (s styles) severityBadge(severity domain.Severity) string {
	style, ok := s.severity[severity]
	if !ok {
		style = s.meta
	}
	return style.Render(string(severity))
}

func (s styles) statusLabel(status domain.InsightStatus) string {
	style, ok := s.status[status]
	if !ok {
		style = s.meta
	}
	return style.Render(string(status))
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
	"github.com/langgate/langgate/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	criticalStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(warning)
	fileStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
)

// RenderReport renders result in the requested style. Unknown styles fall
// back to the log style.
func RenderReport(style domain.ReportStyle, result *domain.ScanResult) string {
	if style == domain.StyleBanner {
		return RenderBanner(result)
	}
	return RenderLog(result)
}

// KindLabel turns a violation kind such as "BannedExtension" into
// "banned extension".
func KindLabel(kind domain.ViolationKind) string {
	words := camelcase.Split(string(kind))
	return strings.ToLower(strings.Join(words, " "))
}

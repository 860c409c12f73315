package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/jiai-terminal/internal/models"
)

var (
	colorPrimary = lipgloss.Color("#00BFFF")
	colorDanger  = lipgloss.Color("#FF6B6B")
	colorWarning = lipgloss.Color("#FFD93D")
	colorSuccess = lipgloss.Color("#6BCF7F")
	colorMuted   = lipgloss.Color("#6C757D")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	starStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(colorWarning).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// SafetyStyle colours a headline by sea state
func SafetyStyle(level models.SafetyLevel) lipgloss.Style {
	switch level {
	case models.SafetyDanger:
		return lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	case models.SafetyCaution:
		return lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	}
}

// SourceBanner returns the notice shown when data is not live, or "" for live data
func SourceBanner(source models.Source) string {
	switch source {
	case models.SourceSimulated:
		return "シミュレーションデータ（デモ用の推定値です）"
	case models.SourceFallback:
		return "一部データ取得に失敗したため、推定値を表示しています"
	default:
		return ""
	}
}

// Render formats a report for the terminal
func Render(r *Report) string {
	var lines []string

	lines = append(lines, titleStyle.Render(fmt.Sprintf("%s  %s %02d:00", r.Request.Location, r.Request.DateKey(), r.Request.Hour)))
	if !r.Sample.IsLive() {
		lines = append(lines, bannerStyle.Render(SourceBanner(r.Sample.Source)))
	}
	lines = append(lines, "")

	lines = append(lines,
		fmt.Sprintf("%s %s  %s", labelStyle.Render("時合指数"), starStyle.Render(r.Stars), r.Score.CategoryText),
		fmt.Sprintf("%s %s %+.1fcm/h（%.2fm）", labelStyle.Render("潮"), r.Advice.TrendText, r.Score.TideDelta, r.Sample.TideLevel()),
		fmt.Sprintf("%s %.0fhPa  %s %.1fm/s  %s %.1fm",
			labelStyle.Render("気圧"), r.Sample.Pressure,
			labelStyle.Render("風速"), r.Sample.WindSpeed,
			labelStyle.Render("波高"), r.Sample.WaveHeight),
		"",
		SafetyStyle(r.Advice.Safety).Render(r.Advice.Headline),
		"",
		labelStyle.Render("潮流戦略"),
		"  "+r.Advice.TideStrategy,
		"  "+r.Advice.DepthNote,
		labelStyle.Render("操船・安全"),
		"  "+r.Advice.WindNote,
		"  "+r.Advice.WaveNote,
		labelStyle.Render("気圧"),
		"  "+r.Advice.PressureNote,
		"",
		mutedStyle.Render(r.Advice.Caption),
	)

	return strings.Join(lines, "\n")
}

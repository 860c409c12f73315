package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/jiai-terminal/internal/advice"
)

// renderConditionsPane renders the star rating and the weather scalars
func (m Model) renderConditionsPane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("時合指数"))
	content.WriteString("\n\n")

	r := m.report
	if r == nil {
		content.WriteString(mutedStyle.Render("データがありません"))
		return paneStyle.Width(width).Render(content.String())
	}

	stars := advice.Stars(r.Score.Stars)
	if width < 30 {
		stars = advice.StarsOutOf(r.Score.Stars, 3)
	}
	content.WriteString(starStyle.Render(stars))
	content.WriteString("  ")
	content.WriteString(valueStyle.Render(r.Score.CategoryText))
	content.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"気圧", fmt.Sprintf("%.0f hPa", r.Sample.Pressure)},
		{"風速", fmt.Sprintf("%.1f m/s", r.Sample.WindSpeed)},
		{"波高", fmt.Sprintf("%.1f m", r.Sample.WaveHeight)},
	}
	for _, row := range rows {
		content.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Width(5).Render(row.label), valueStyle.Render(row.value)))
	}

	return paneStyle.Width(width).Render(content.String())
}

// renderAdvice renders the advice text without borders or width constraints
func (m Model) renderAdvice() string {
	r := m.report
	if r == nil {
		return mutedStyle.Render("アドバイスはありません")
	}

	a := r.Advice
	lines := []string{
		safetyStyle(a.Safety).Render(a.Headline),
		"",
		labelStyle.Render("潮流戦略"),
		"  " + a.TideStrategy,
		"  " + a.DepthNote,
		labelStyle.Render("操船・安全"),
		"  " + a.WindNote,
		"  " + a.WaveNote,
		labelStyle.Render("気圧"),
		"  " + a.PressureNote,
		"",
		mutedStyle.Render(a.Caption),
	}
	return strings.Join(lines, "\n")
}

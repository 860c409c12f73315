package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/ngmaloney/jiai-terminal/internal/models"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// tideSparkline draws hours 0-23 of the series, highlighting hour
func tideSparkline(series models.TideSeries, hour int) string {
	n := len(series)
	if n > 24 {
		n = 24
	}
	if n == 0 {
		return ""
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range series[:n] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	var b strings.Builder
	for i, v := range series[:n] {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		block := string(sparkBlocks[idx])
		if i == hour {
			block = markerStyle.Render(block)
		}
		b.WriteString(block)
	}
	return b.String()
}

// hourRuler labels every sixth hour under the sparkline
func hourRuler(width int) string {
	var b strings.Builder
	for h := 0; h < width; h += 6 {
		label := fmt.Sprintf("%d", h)
		b.WriteString(label)
		if pad := 6 - len(label); h+6 < width && pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return b.String()
}

// renderTidePane renders the tide curve and current rate
func (m Model) renderTidePane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("潮汐"))
	content.WriteString("\n\n")

	r := m.report
	if r == nil || len(r.Sample.TideSeries) == 0 {
		content.WriteString(mutedStyle.Render("潮位データがありません"))
		return paneStyle.Width(width).Render(content.String())
	}

	content.WriteString(tideSparkline(r.Sample.TideSeries, r.Sample.HourIndex))
	content.WriteString("\n")
	content.WriteString(mutedStyle.Render(hourRuler(24)))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("潮位"), valueStyle.Render(fmt.Sprintf("%.2fm", r.Sample.TideLevel()))))
	content.WriteString(fmt.Sprintf("%s %s %s\n",
		labelStyle.Render("潮流"),
		valueStyle.Render(fmt.Sprintf("%+.1fcm/h", r.Score.TideDelta)),
		r.Advice.TrendText))

	return paneStyle.Width(width).Render(content.String())
}

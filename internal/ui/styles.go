package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/jiai-terminal/internal/models"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for danger
	colorWarning = lipgloss.Color("#FFD93D") // Yellow for caution and stars
	colorSuccess = lipgloss.Color("#6BCF7F") // Green
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	// Title styles (no padding - paneStyle already has padding)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginRight(1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	starStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	// Current hour in the tide curve
	markerStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(colorWarning).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginTop(1)
)

// safetyStyle returns the headline style for a sea state
func safetyStyle(level models.SafetyLevel) lipgloss.Style {
	switch level {
	case models.SafetyDanger:
		return errorStyle
	case models.SafetyCaution:
		return lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	}
}

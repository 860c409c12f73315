package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/jiai-terminal/internal/geocoding"
	"github.com/ngmaloney/jiai-terminal/internal/models"
	"github.com/ngmaloney/jiai-terminal/internal/report"
)

// Message types for async operations

// geocodeMsg is sent when geocoding completes
type geocodeMsg struct {
	location *geocoding.Location
	err      error
}

// reportBuiltMsg is sent when a report for the current location is ready
type reportBuiltMsg struct {
	report *report.Report
}

// spotsFetchedMsg is sent when the saved spots have been listed
type spotsFetchedMsg struct {
	spots []models.Spot
	err   error
}

// geocodeLocation performs geocoding in the background
func geocodeLocation(geocoder report.Geocoder, query string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		location, err := geocoder.Geocode(ctx, query)
		return geocodeMsg{location: location, err: err}
	}
}

// buildReport samples and scores a resolved location.
// The sampler never fails, so there is no error path.
func buildReport(builder ReportBuilder, loc *geocoding.Location, q report.Query, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		// Two concurrent API calls, each bounded by the client timeout
		ctx, cancel := context.WithTimeout(context.Background(), 2*timeout)
		defer cancel()

		return reportBuiltMsg{report: builder.ForLocation(ctx, loc, q)}
	}
}

// fetchSpots lists the saved spots
func fetchSpots(store SpotStore) tea.Cmd {
	return func() tea.Msg {
		spots, err := store.ListSpots(context.Background())
		return spotsFetchedMsg{spots: spots, err: err}
	}
}

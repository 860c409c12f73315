package ui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/jiai-terminal/internal/advice"
	"github.com/ngmaloney/jiai-terminal/internal/geocoding"
	"github.com/ngmaloney/jiai-terminal/internal/models"
	"github.com/ngmaloney/jiai-terminal/internal/report"
	"github.com/ngmaloney/jiai-terminal/internal/sampler"
)

type mockGeocoder struct {
	loc *geocoding.Location
	err error
}

func (m *mockGeocoder) Geocode(ctx context.Context, query string) (*geocoding.Location, error) {
	return m.loc, m.err
}

type mockSpotStore struct {
	spots []models.Spot
	err   error
}

func (m *mockSpotStore) ListSpots(ctx context.Context) ([]models.Spot, error) {
	return m.spots, m.err
}

var kannonzaki = &geocoding.Location{Name: "観音崎", Latitude: 35.2561, Longitude: 139.7452, Style: "タイラバ"}

func testOptions() Options {
	geocoder := &mockGeocoder{loc: kannonzaki}
	return Options{
		Builder:  report.NewBuilder(geocoder, sampler.NewSimulator(), advice.DefaultScorer(), "タイラバ", nil),
		Geocoder: geocoder,
		Spots: &mockSpotStore{spots: []models.Spot{
			{Name: "観音崎", Latitude: 35.2561, Longitude: 139.7452, Style: "タイラバ", Preset: true},
			{Name: "城ヶ島", Latitude: 35.1344, Longitude: 139.6167, Style: "ジギング", Preset: true},
		}},
		Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Hour:     12,
		Simulate: true,
	}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

// run executes a command and feeds its message back, as the program loop would
func run(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var next tea.Cmd
		for _, c := range batch {
			if c == nil {
				continue
			}
			inner := c()
			switch inner.(type) {
			case geocodeMsg, reportBuiltMsg, spotsFetchedMsg:
				updated, n := m.Update(inner)
				m, next = updated.(Model), n
			}
		}
		return m, next
	}
	updated, next := m.Update(msg)
	return updated.(Model), next
}

func TestNewModel(t *testing.T) {
	m := NewModel(testOptions())

	if m.state != StateSearch {
		t.Errorf("NewModel() state = %v, want StateSearch", m.state)
	}
	if !m.searchInput.Focused() {
		t.Error("Expected search input to be focused initially")
	}
	if m.query.Hour != 12 || !m.query.Simulate {
		t.Errorf("query not seeded from options: %+v", m.query)
	}

	zero := NewModel(Options{})
	if zero.timeout != 5*time.Second {
		t.Errorf("default timeout = %v, want 5s", zero.timeout)
	}
	if zero.query.Date.IsZero() {
		t.Error("default date should be today")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewModel(testOptions())

	updatedModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updatedModel.(Model)

	if m.width != 120 || m.height != 40 {
		t.Errorf("After WindowSizeMsg, size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestModel_Update_ErrorMsg(t *testing.T) {
	m := NewModel(testOptions())

	updatedModel, _ := m.Update(spotsFetchedMsg{err: tea.ErrProgramKilled})
	m = updatedModel.(Model)

	if m.state != StateError {
		t.Errorf("After a failed spot fetch, state = %v, want StateError", m.state)
	}
	if m.err == nil {
		t.Error("After a failed spot fetch, err should not be nil")
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := NewModel(testOptions())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Expected Ctrl+C to return quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected Ctrl+C to quit")
	}
}

func TestModel_QIsTextWhileSearching(t *testing.T) {
	m := NewModel(testOptions())
	m = typeText(m, "q")

	if m.searchInput.Value() != "q" {
		t.Errorf("Expected 'q' to be typed into search, got %q", m.searchInput.Value())
	}

	m.state = StateDisplay
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Expected q to quit from the dashboard")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected q to quit from the dashboard")
	}
}

func TestTextInputHandling(t *testing.T) {
	m := NewModel(testOptions())
	m = typeText(m, "城ヶ島")

	if m.searchInput.Value() != "城ヶ島" {
		t.Errorf("Expected search input to be '城ヶ島', got '%s'", m.searchInput.Value())
	}

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updatedModel.(Model)

	if m.searchInput.Value() != "城ヶ" {
		t.Errorf("Expected '城ヶ' after backspace, got '%s'", m.searchInput.Value())
	}
}

func TestEnterKeyWithEmptyInput(t *testing.T) {
	m := NewModel(testOptions())

	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updatedModel.(Model)

	if m.state != StateSearch {
		t.Errorf("Expected to remain in StateSearch, got %v", m.state)
	}
	if cmd != nil {
		t.Error("Expected no command for empty search")
	}
}

func TestSearch_ToDisplay(t *testing.T) {
	m := NewModel(testOptions())
	m.width, m.height = 100, 40
	m = typeText(m, "観音崎")

	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updatedModel.(Model)

	if m.state != StateLoading {
		t.Fatalf("state = %v, want StateLoading", m.state)
	}
	if m.searchInput.Value() != "" {
		t.Errorf("search input should be cleared after search, got %q", m.searchInput.Value())
	}

	// geocode
	m, cmd = run(t, m, cmd)
	if m.state != StateLoading || m.location == nil {
		t.Fatalf("after geocode state = %v, location = %v", m.state, m.location)
	}

	// sample and score
	m, _ = run(t, m, cmd)
	if m.state != StateDisplay {
		t.Fatalf("state = %v, want StateDisplay", m.state)
	}
	if m.report == nil || m.report.Score.Stars != 4 {
		t.Fatalf("unexpected report: %+v", m.report)
	}

	view := m.View()
	for _, want := range []string{"観音崎", "2024-06-01 12:00", "★★★★☆", "下げ潮", "【良好】"} {
		if !strings.Contains(view, want) {
			t.Errorf("display view missing %q", want)
		}
	}
}

func TestSearch_ErrorRecovery(t *testing.T) {
	opts := testOptions()
	opts.Geocoder = &mockGeocoder{err: geocoding.ErrNoResults}
	m := NewModel(opts)
	m = typeText(m, "InvalidPlace")

	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updatedModel.(Model)
	m, _ = run(t, m, cmd)

	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	if m.err == nil || !strings.Contains(m.err.Error(), "geocoding failed") {
		t.Errorf("unexpected error: %v", m.err)
	}

	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = updatedModel.(Model)

	if m.err != nil {
		t.Error("Error should be cleared when returning to search")
	}
	if m.state != StateSearch {
		t.Errorf("state = %v, want StateSearch", m.state)
	}
}

func TestSpotList_TabStartsSpinner(t *testing.T) {
	m := NewModel(testOptions())
	m.width, m.height = 100, 40

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("Tab should batch the spinner with the spot fetch, got %T", cmd())
	}

	var ticked, fetched bool
	for _, c := range batch {
		if c == nil {
			continue
		}
		switch c().(type) {
		case spinner.TickMsg:
			ticked = true
		case spotsFetchedMsg:
			fetched = true
		}
	}
	if !ticked || !fetched {
		t.Errorf("batch ticked=%v fetched=%v, want both", ticked, fetched)
	}
}

func TestSpotList_SelectSpot(t *testing.T) {
	m := NewModel(testOptions())
	m.width, m.height = 100, 40

	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updatedModel.(Model)
	if m.state != StateLoading {
		t.Fatalf("state = %v, want StateLoading", m.state)
	}

	m, _ = run(t, m, cmd)
	if m.state != StateSpotList {
		t.Fatalf("state = %v, want StateSpotList", m.state)
	}
	if len(m.spotList.Items()) != 2 {
		t.Fatalf("spot list has %d items, want 2", len(m.spotList.Items()))
	}

	// move to 城ヶ島 and select it
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updatedModel.(Model)
	updatedModel, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updatedModel.(Model)

	if m.location == nil || m.location.Name != "城ヶ島" {
		t.Fatalf("selected location = %+v, want 城ヶ島", m.location)
	}

	m, _ = run(t, m, cmd)
	if m.state != StateDisplay {
		t.Fatalf("state = %v, want StateDisplay", m.state)
	}
	if m.report.Request.Style != "ジギング" {
		t.Errorf("style = %q, want spot style ジギング", m.report.Request.Style)
	}
}

func TestSpotList_Errors(t *testing.T) {
	tests := []struct {
		name  string
		store *mockSpotStore
	}{
		{"store error", &mockSpotStore{err: fmt.Errorf("database is locked")}},
		{"empty", &mockSpotStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			opts.Spots = tt.store
			m := NewModel(opts)
			m.width, m.height = 100, 40

			updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
			m = updatedModel.(Model)
			m, _ = run(t, m, cmd)

			if m.state != StateError {
				t.Errorf("state = %v, want StateError", m.state)
			}
		})
	}
}

func TestSpotList_BackToSearch(t *testing.T) {
	m := NewModel(testOptions())
	m.width, m.height = 100, 40
	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updatedModel.(Model)
	m, _ = run(t, m, cmd)

	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updatedModel.(Model)

	if m.state != StateSearch {
		t.Errorf("state = %v, want StateSearch", m.state)
	}
}

func TestDisplay_HourNavigation(t *testing.T) {
	m := NewModel(testOptions())
	m, cmd := run(t, m, func() tea.Msg { return geocodeMsg{location: kannonzaki} })
	m, _ = run(t, m, cmd)
	if m.state != StateDisplay {
		t.Fatalf("state = %v, want StateDisplay", m.state)
	}
	before := m.report.Score.TideDelta

	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updatedModel.(Model)
	if m.query.Hour != 13 {
		t.Errorf("hour = %d, want 13", m.query.Hour)
	}
	m, _ = run(t, m, cmd)
	if m.report.Request.Hour != 13 {
		t.Errorf("report hour = %d, want 13", m.report.Request.Hour)
	}
	if m.report.Score.TideDelta == before {
		t.Error("expected a different tide delta at the next hour")
	}

	m.query.Hour = 23
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd != nil {
		t.Error("hour should not advance past 23")
	}

	m.query.Hour = 0
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if cmd != nil {
		t.Error("hour should not go below 0")
	}
}

func TestDisplay_NewSearch(t *testing.T) {
	m := NewModel(testOptions())
	m, _ = run(t, m, buildReport(m.builder, kannonzaki, m.query, m.timeout))
	m.location = kannonzaki

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updatedModel.(Model)

	if m.state != StateSearch {
		t.Errorf("state = %v, want StateSearch", m.state)
	}
	if m.report != nil || m.location != nil {
		t.Error("expected selection to be cleared")
	}
}

func TestModel_View_States(t *testing.T) {
	tests := []struct {
		name  string
		state AppState
	}{
		{"search", StateSearch},
		{"loading", StateLoading},
		{"display", StateDisplay},
		{"error", StateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(testOptions())
			m.state = tt.state
			m.width = 80
			m.height = 24

			if view := m.View(); view == "" {
				t.Errorf("View() returned empty string for state %v", tt.state)
			}
		})
	}
}

func TestModel_View_InitialLoading(t *testing.T) {
	m := NewModel(testOptions())

	if view := m.View(); view != "Loading..." {
		t.Errorf("View() before window size = %q, want 'Loading...'", view)
	}
}

func TestAppState_Constants(t *testing.T) {
	if StateSearch != 0 {
		t.Errorf("StateSearch = %d, want 0", StateSearch)
	}
	if StateSpotList != 1 {
		t.Errorf("StateSpotList = %d, want 1", StateSpotList)
	}
	if StateLoading != 2 {
		t.Errorf("StateLoading = %d, want 2", StateLoading)
	}
	if StateDisplay != 3 {
		t.Errorf("StateDisplay = %d, want 3", StateDisplay)
	}
	if StateError != 4 {
		t.Errorf("StateError = %d, want 4", StateError)
	}
}

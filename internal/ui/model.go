package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/jiai-terminal/internal/geocoding"
	"github.com/ngmaloney/jiai-terminal/internal/models"
	"github.com/ngmaloney/jiai-terminal/internal/report"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch   AppState = iota // Enter a spot name, place or "lat,lon"
	StateSpotList                 // Pick from saved and preset spots
	StateLoading                  // Geocoding or sampling
	StateDisplay                  // Dashboard for the selected place and hour
	StateError                    // Error state
)

// ReportBuilder turns a resolved location into a report
type ReportBuilder interface {
	ForLocation(ctx context.Context, loc *geocoding.Location, q report.Query) *report.Report
}

// SpotStore lists saved spots
type SpotStore interface {
	ListSpots(ctx context.Context) ([]models.Spot, error)
}

// Options wires the model to its services
type Options struct {
	Builder  ReportBuilder
	Geocoder report.Geocoder
	Spots    SpotStore // optional
	Date     time.Time
	Hour     int
	Style    string // overrides the spot style when set
	Simulate bool
	Timeout  time.Duration
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	// Search
	searchInput textinput.Model
	searchQuery string // Last search query

	// Spots
	spotList list.Model

	// Services
	builder  ReportBuilder
	geocoder report.Geocoder
	spots    SpotStore
	timeout  time.Duration

	// Current selection
	query    report.Query
	location *geocoding.Location
	report   *report.Report

	spinner spinner.Model
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "釣り場名・地名・緯度,経度（例：観音崎 / 35.25,139.74）"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return Model{
		state:       StateSearch,
		searchInput: ti,
		builder:     opts.Builder,
		geocoder:    opts.Geocoder,
		spots:       opts.Spots,
		timeout:     timeout,
		query: report.Query{
			Date:     date,
			Hour:     opts.Hour,
			Style:    opts.Style,
			Simulate: opts.Simulate,
		},
		spinner: s,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateSpotList {
			m.spotList.SetSize(msg.Width-4, msg.Height-6)
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case geocodeMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("geocoding failed: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		return m.loadLocation(msg.location)

	case reportBuiltMsg:
		m.report = msg.report
		m.state = StateDisplay
		return m, nil

	case spotsFetchedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("loading spots failed: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		if len(msg.spots) == 0 {
			m.err = fmt.Errorf("no saved spots")
			m.state = StateError
			return m, nil
		}
		m.spotList = createSpotList(msg.spots, m.width-4, m.height-6)
		m.state = StateSpotList
		return m, nil
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global keys. "q" is text while searching.
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if keyMsg.String() == "q" && m.state != StateSearch && !m.filtering() {
			return m, tea.Quit
		}

		// State-specific handling
		switch m.state {
		case StateSearch:
			return m.handleSearchInput(keyMsg)

		case StateSpotList:
			return m.handleSpotList(msg)

		case StateDisplay:
			return m.handleDisplay(keyMsg)

		case StateError:
			// Any key returns to search (except quit keys)
			m.state = StateSearch
			m.err = nil
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}

	// Update appropriate component based on state
	switch m.state {
	case StateLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case StateSpotList:
		m.spotList, cmd = m.spotList.Update(msg)
	}

	return m, cmd
}

// filtering reports whether the spot list is capturing keystrokes for its filter
func (m Model) filtering() bool {
	return m.state == StateSpotList && m.spotList.FilterState() == list.Filtering
}

// loadLocation starts sampling for a resolved location
func (m Model) loadLocation(loc *geocoding.Location) (tea.Model, tea.Cmd) {
	m.location = loc
	m.state = StateLoading
	if m.builder == nil {
		m.err = fmt.Errorf("no report builder configured")
		m.state = StateError
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, buildReport(m.builder, loc, m.query, m.timeout))
}

// handleSearchInput handles keyboard input in search state
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Clear error when typing
	if m.err != nil && msg.Type != tea.KeyEnter {
		m.err = nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		query := m.searchInput.Value()
		if query == "" || m.geocoder == nil {
			return m, nil
		}
		m.searchQuery = query
		m.searchInput.SetValue("")
		m.err = nil
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, geocodeLocation(m.geocoder, query, m.timeout))

	case tea.KeyTab:
		if m.spots == nil {
			return m, nil
		}
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, fetchSpots(m.spots))
	}

	// Update text input
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleSpotList handles keyboard input in spot list state
func (m Model) handleSpotList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.filtering() {
		if keyMsg.Type == tea.KeyEnter {
			if item, ok := m.spotList.SelectedItem().(spotItem); ok {
				m.searchQuery = item.spot.Name
				return m.loadLocation(item.location())
			}
		}
		// 's' or Esc to go back to search
		if keyMsg.String() == "s" || keyMsg.Type == tea.KeyEsc {
			m.state = StateSearch
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}

	m.spotList, cmd = m.spotList.Update(msg)
	return m, cmd
}

// handleDisplay handles keyboard input on the dashboard
func (m Model) handleDisplay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "s":
		m.state = StateSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.location = nil
		m.report = nil
		return m, textinput.Blink

	case msg.Type == tea.KeyTab:
		if m.spots == nil {
			return m, nil
		}
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, fetchSpots(m.spots))

	case msg.Type == tea.KeyLeft || msg.String() == "h":
		return m.shiftHour(-1)

	case msg.Type == tea.KeyRight || msg.String() == "l":
		return m.shiftHour(1)
	}
	return m, nil
}

// shiftHour moves the sampled hour within 0-23 and rebuilds the report
func (m Model) shiftHour(delta int) (tea.Model, tea.Cmd) {
	hour := m.query.Hour + delta
	if hour < 0 || hour > 23 || m.location == nil {
		return m, nil
	}
	m.query.Hour = hour
	return m.loadLocation(m.location)
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateSearch:
		return m.viewSearch()
	case StateSpotList:
		return m.viewSpotList()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ エラー")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to return to search • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}

// viewSearch renders the search view
func (m Model) viewSearch() string {
	title := titleStyle.Render("🎣 Jiai Terminal")
	subtitle := mutedStyle.Render(fmt.Sprintf("時合ダッシュボード • %s %02d:00", m.query.Date.Format(models.DateLayout), m.query.Hour))

	searchBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(64).
		Render(m.searchInput.View())

	sections := []string{title, subtitle, "", searchBox}

	if m.err != nil {
		sections = append(sections, "", errorStyle.Padding(0, 2).Render("✗ "+m.err.Error()))
	}

	examples := mutedStyle.Render("Examples: 観音崎 | 城ヶ島 | 葉山 | 35.25,139.74")
	help := helpStyle.Render("Enter: Search • Tab: Saved spots • Ctrl+C: Quit")
	sections = append(sections, "", examples, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewSpotList renders the spot selection list
func (m Model) viewSpotList() string {
	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • /: Filter • S/Esc: Back to search • Q: Quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.spotList.View(), help)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	s := "データを取得しています"
	switch {
	case m.location != nil:
		s = fmt.Sprintf("%s の海況を取得しています", m.location.Name)
	case m.searchQuery != "":
		s = fmt.Sprintf("%s を検索しています", m.searchQuery)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), s)
}

// viewDisplay renders the dashboard
func (m Model) viewDisplay() string {
	if m.report == nil {
		return "No report loaded"
	}
	r := m.report

	header := titleStyle.Padding(0, 1).Render(fmt.Sprintf("🎣 %s  %s %02d:00  %s",
		r.Request.Location, r.Request.DateKey(), r.Request.Hour, r.Request.Style))
	sections := []string{header}

	if !r.Sample.IsLive() {
		sections = append(sections, bannerStyle.Render(report.SourceBanner(r.Sample.Source)))
	}

	paneWidth := 36
	if m.width > 0 && m.width < 2*paneWidth+4 {
		paneWidth = m.width/2 - 2
	}
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderConditionsPane(paneWidth),
		m.renderTidePane(paneWidth),
	)
	sections = append(sections, "", panes,
		sectionHeaderStyle.Render("釣行アドバイス"),
		m.renderAdvice(),
	)

	help := helpStyle.Render("←/→: Hour • Tab: Saved spots • S: New search • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

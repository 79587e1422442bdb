package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/flights-cli/internal/logger"
	"github.com/mobil-koeln/flights-cli/internal/models"
	"github.com/mobil-koeln/flights-cli/internal/search"
	"github.com/mobil-koeln/flights-cli/internal/session"
)

type focusField int

const (
	focusTrip focusField = iota
	focusOrigin
	focusSwap
	focusDestination
	focusDepart
	focusReturn
	focusPassengers
	focusSubmit
	focusTiles
)

const (
	defaultSearchTimeout = 30 * time.Second
	datePlaceholder      = "YYYY-MM-DD"
)

var tripTypes = []models.TripType{models.TripRoundTrip, models.TripOneWay}

// Options configures the TUI model.
type Options struct {
	// Searcher answers submitted searches. Defaults to the catalog searcher.
	Searcher search.Searcher

	// Logger receives diagnostics. It must not write to the terminal.
	Logger *logger.Logger

	// Timeout bounds a single search.
	Timeout time.Duration

	// StartView is the tab shown first. Results is not reachable before a
	// search and falls back to the search form.
	StartView session.View
}

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	searcher search.Searcher
	log      *logger.Logger
	timeout  time.Duration

	width  int
	height int

	state session.State

	// Search form
	focus       focusField
	originInput textinput.Model
	destInput   textinput.Model
	departInput textinput.Model
	returnInput textinput.Model
	tripCursor  int
	tileCursor  int

	// In-flight search
	spinner   spinner.Model
	cancel    context.CancelFunc
	submitted models.SearchQuery

	// Results
	sortOrder    models.SortOrder
	resultCursor int

	// Explore
	destinations  []models.Destination
	exploreCursor int
}

// New creates a new TUI model.
func New(opts Options) Model {
	if opts.Searcher == nil {
		opts.Searcher = search.NewCatalogSearcher()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultSearchTimeout
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styleLoading),
	)

	m := Model{
		searcher:     opts.Searcher,
		log:          opts.Logger,
		timeout:      opts.Timeout,
		state:        session.New(),
		originInput:  newInput("Where from?"),
		destInput:    newInput("Where to?"),
		departInput:  newInput(datePlaceholder),
		returnInput:  newInput(datePlaceholder),
		spinner:      sp,
		destinations: models.PopularDestinations(),
	}
	if opts.StartView != session.ViewResults {
		m.state.SetView(opts.StartView)
	}
	m.setFocus(focusOrigin)
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	ti.Width = 14
	return ti
}

// Init returns the initial command (textinput blink).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns a copy of the view model.
func (m Model) State() session.State {
	return m.state
}

// input returns the text input behind a focus target, or nil.
func (m *Model) input(f focusField) *textinput.Model {
	switch f {
	case focusOrigin:
		return &m.originInput
	case focusDestination:
		return &m.destInput
	case focusDepart:
		return &m.departInput
	case focusReturn:
		return &m.returnInput
	}
	return nil
}

// focusOrder lists the focus targets of the search view. Return date is
// only part of the form for round trips.
func (m Model) focusOrder() []focusField {
	order := []focusField{focusTrip, focusOrigin, focusSwap, focusDestination, focusDepart}
	if m.state.Query.TripType != models.TripOneWay {
		order = append(order, focusReturn)
	}
	return append(order, focusPassengers, focusSubmit, focusTiles)
}

func (m *Model) setFocus(f focusField) {
	for _, in := range []*textinput.Model{&m.originInput, &m.destInput, &m.departInput, &m.returnInput} {
		in.Blur()
	}
	m.focus = f
	if in := m.input(f); in != nil {
		in.Focus()
	}
	if f == focusTrip {
		m.tripCursor = tripIndex(m.state.Query.TripType)
	}
}

func (m *Model) moveFocus(delta int) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	next := (idx + delta + len(order)) % len(order)
	m.setFocus(order[next])
}

// typing reports whether key presses go to a text input.
func (m Model) typing() bool {
	return m.state.View == session.ViewSearch && (&m).input(m.focus) != nil
}

// syncQuery copies the text inputs into the form query.
func (m *Model) syncQuery() {
	m.state.Query.Origin = m.originInput.Value()
	m.state.Query.Destination = m.destInput.Value()
	m.state.Query.DepartDate = m.departInput.Value()
	m.state.Query.ReturnDate = m.returnInput.Value()
}

// syncInputs copies the form query into the text inputs.
func (m *Model) syncInputs() {
	m.originInput.SetValue(m.state.Query.Origin)
	m.destInput.SetValue(m.state.Query.Destination)
	m.departInput.SetValue(m.state.Query.DepartDate)
	m.returnInput.SetValue(m.state.Query.ReturnDate)
}

// sortedOffers returns the offers of a successful search in the chosen order.
func (m Model) sortedOffers() []models.FlightOffer {
	if m.state.Status.Phase != session.PhaseSuccess {
		return nil
	}
	return models.SortOffers(m.state.Status.Offers, m.sortOrder)
}

func tripIndex(t models.TripType) int {
	for i, tt := range tripTypes {
		if tt == t {
			return i
		}
	}
	return 0
}

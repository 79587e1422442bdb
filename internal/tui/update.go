package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/flights-cli/internal/session"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case spinner.TickMsg:
		// Stop ticking once nothing is loading
		if !m.state.Status.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Pass remaining messages (cursor blink) to the focused input
	if m.typing() {
		in := m.input(m.focus)
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results and results after quit
	if !m.state.Resolve(msg.seq, msg.offers, msg.err) {
		return m, nil
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if msg.err != nil {
		m.log.Warn().Err(msg.err).Int("seq", msg.seq).Msg("search failed")
	}
	m.resultCursor = 0
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "f1":
		return m.switchView(session.ViewSearch)
	case "f2":
		return m.switchView(session.ViewResults)
	case "f3":
		return m.switchView(session.ViewExplore)
	case "f4":
		return m.switchView(session.ViewTrips)
	}

	// Single-key shortcuts, unless a text input takes the keystroke
	if !m.typing() {
		switch msg.String() {
		case "q":
			return m.quit()
		case "1":
			return m.switchView(session.ViewSearch)
		case "2":
			return m.switchView(session.ViewResults)
		case "3":
			return m.switchView(session.ViewExplore)
		case "4":
			return m.switchView(session.ViewTrips)
		}
	}

	switch m.state.View {
	case session.ViewSearch:
		return m.handleFormKeys(msg)
	case session.ViewResults:
		return m.handleResultsKeys(msg)
	case session.ViewExplore:
		return m.handleExploreKeys(msg)
	case session.ViewTrips:
		return m.handleTripsKeys(msg)
	}

	return m, nil
}

// switchView changes the active tab. Results only become reachable once a
// search has been submitted.
func (m Model) switchView(v session.View) (tea.Model, tea.Cmd) {
	if v == session.ViewResults && !m.state.Searched() {
		return m, nil
	}
	m.state.SetView(v)
	if v == session.ViewSearch {
		m.setFocus(m.focus)
	}
	return m, nil
}

// submit validates the form and starts a search, superseding any search
// still in flight.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.syncQuery()
	ticket, err := m.state.Submit()
	if err != nil {
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.log.Debug().Err(err).Msg("search form incomplete")
		return m, nil
	}

	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	m.cancel = cancel
	m.submitted = ticket.Query
	m.resultCursor = 0

	m.log.Debug().Int("seq", ticket.Seq).Msg("search submitted")
	return m, tea.Batch(runSearch(ctx, m.searcher, ticket), m.spinner.Tick)
}

// quit cancels the in-flight search and disposes the state so that a late
// result is never applied.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.state.Dispose()
	return m, tea.Quit
}

func (m Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	offers := m.sortedOffers()

	switch msg.String() {
	case "esc", "e":
		return m.switchView(session.ViewSearch)

	case "s":
		m.sortOrder = m.sortOrder.Next()
		m.resultCursor = 0
		return m, nil

	case "r":
		if m.state.Status.Failed() {
			return m.submit()
		}
		return m, nil

	case "j", "down":
		if m.resultCursor < len(offers)-1 {
			m.resultCursor++
		}
		return m, nil

	case "k", "up":
		if m.resultCursor > 0 {
			m.resultCursor--
		}
		return m, nil

	case "g", "home":
		m.resultCursor = 0
		return m, nil

	case "G", "end":
		if len(offers) > 0 {
			m.resultCursor = len(offers) - 1
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleExploreKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l", "right", "j", "down":
		if m.exploreCursor < len(m.destinations)-1 {
			m.exploreCursor++
		}
		return m, nil

	case "h", "left", "k", "up":
		if m.exploreCursor > 0 {
			m.exploreCursor--
		}
		return m, nil

	case "enter", " ":
		if len(m.destinations) == 0 {
			return m, nil
		}
		m.state.SelectDestination(m.destinations[m.exploreCursor].Code)
		m.syncInputs()
		m.state.SetView(session.ViewSearch)
		m.setFocus(focusDepart)
		return m, nil

	case "esc":
		return m.switchView(session.ViewSearch)
	}

	return m, nil
}

func (m Model) handleTripsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "s", "esc":
		return m.switchView(session.ViewSearch)
	}
	return m, nil
}

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/flights-cli/internal/models"
	"github.com/mobil-koeln/flights-cli/internal/output"
)

const tilesPerRow = 3

// handleFormKeys handles key events on the search view.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.moveFocus(1)
		return m, nil

	case "shift+tab":
		m.moveFocus(-1)
		return m, nil

	case "ctrl+x":
		m.syncQuery()
		m.state.SwapLocations()
		m.syncInputs()
		return m, nil

	case "enter":
		return m.activate()
	}

	if in := m.input(m.focus); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		m.syncQuery()
		return m, cmd
	}

	switch m.focus {
	case focusTrip:
		return m.handleTripKeys(msg)
	case focusPassengers:
		return m.handlePassengerKeys(msg)
	case focusTiles:
		return m.handleTileKeys(msg)
	case focusSwap:
		if msg.String() == " " {
			m.state.SwapLocations()
			m.syncInputs()
		}
	}

	return m, nil
}

// activate runs the Enter action of the focused control. Text fields and
// the button submit the form.
func (m Model) activate() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusTrip:
		m.state.SetTripType(tripTypes[m.tripCursor])
		return m, nil

	case focusSwap:
		m.syncQuery()
		m.state.SwapLocations()
		m.syncInputs()
		return m, nil

	case focusTiles:
		m.selectTile()
		return m, nil
	}

	return m.submit()
}

func (m Model) handleTripKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.tripCursor > 0 {
			m.tripCursor--
		}
	case "l", "right":
		if m.tripCursor < len(tripTypes)-1 {
			m.tripCursor++
		}
	case " ":
		m.state.SetTripType(tripTypes[m.tripCursor])
	}
	return m, nil
}

func (m Model) handlePassengerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left", "-":
		m.state.DecPassengers()
	case "l", "right", "+", "=":
		m.state.IncPassengers()
	}
	return m, nil
}

func (m Model) handleTileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.tileCursor > 0 {
			m.tileCursor--
		}
	case "l", "right":
		if m.tileCursor < len(m.destinations)-1 {
			m.tileCursor++
		}
	case "k", "up":
		if m.tileCursor >= tilesPerRow {
			m.tileCursor -= tilesPerRow
		}
	case "j", "down":
		if m.tileCursor+tilesPerRow < len(m.destinations) {
			m.tileCursor += tilesPerRow
		}
	case " ":
		m.selectTile()
	}
	return m, nil
}

// selectTile fills the destination from the tile under the cursor.
func (m *Model) selectTile() {
	if m.tileCursor < 0 || m.tileCursor >= len(m.destinations) {
		return
	}
	m.syncQuery()
	m.state.SelectDestination(m.destinations[m.tileCursor].Code)
	m.syncInputs()
}

// renderSearchView renders the search form and the destination tiles.
func (m Model) renderSearchView() string {
	q := m.state.Query

	var trip strings.Builder
	for i, tt := range tripTypes {
		focused := m.focus == focusTrip && m.tripCursor == i
		trip.WriteString(renderChip(tt.Label(), q.TripType == tt, focused))
		trip.WriteString(" ")
	}

	swap := renderChip("⇄", false, m.focus == focusSwap)
	places := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderField("From", focusOrigin),
		" ", swap, " ",
		m.renderField("To", focusDestination),
	)

	dates := m.renderField("Depart", focusDepart)
	if q.TripType != models.TripOneWay {
		dates = lipgloss.JoinHorizontal(lipgloss.Top, dates, "   ", m.renderField("Return", focusReturn))
	}

	passengers := m.renderLabel("Passengers", focusPassengers) + " " +
		renderChip("‹ "+models.PassengerLabel(q.Passengers)+" ›", true, m.focus == focusPassengers)

	buttonLabel := "Search flights"
	if m.state.Status.Loading() {
		buttonLabel = "Searching..."
	}
	button := renderButton(buttonLabel, m.focus == focusSubmit)

	rows := []string{trip.String(), "", places, dates, passengers, "", button}
	if m.state.Status.Failed() {
		rows = append(rows, "", styleErrorBox.Render(m.state.Status.Message))
	}

	formBorder := stylePanelNormal
	if m.focus != focusTiles {
		formBorder = stylePanelFocused
	}
	form := formBorder.Width(max(m.width-2, 20)).Render(strings.Join(rows, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, form, m.renderTiles())
}

// renderField renders a labelled text input.
func (m Model) renderField(label string, f focusField) string {
	in := (&m).input(f)
	return m.renderLabel(label, f) + " " + styleInput.Render(in.View())
}

func (m Model) renderLabel(label string, f focusField) string {
	if m.focus == f {
		return styleSelected.Render(label + ":")
	}
	return styleHeader.Render(label + ":")
}

// renderTiles renders the popular destination tiles in rows.
func (m Model) renderTiles() string {
	title := styleHeader.Render(" Popular destinations")

	var rows []string
	for start := 0; start < len(m.destinations); start += tilesPerRow {
		end := min(start+tilesPerRow, len(m.destinations))
		var tiles []string
		for i := start; i < end; i++ {
			focused := m.focus == focusTiles && m.tileCursor == i
			tiles = append(tiles, renderDestination(m.destinations[i], focused, false))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)
}

// renderDestination renders one destination card. Explore cards show the
// airport code, search tiles show the country.
func renderDestination(d models.Destination, focused, explore bool) string {
	border := stylePanelNormal
	if focused {
		border = stylePanelFocused
	}

	second := styleMuted.Render(d.Country)
	price := stylePrice.Render(output.FormatPrice(d.Price))
	if explore {
		second = styleMuted.Render(d.Country + " · " + d.Code)
		price = "From " + price
	}

	lines := []string{styleHeader.Render(d.City), second, price}
	return border.Width(18).Render(strings.Join(lines, "\n"))
}

// renderChip renders a single chip with cursor highlighting.
func renderChip(label string, active bool, focused bool) string {
	if focused {
		if active {
			return styleChipCursor.Render("[" + label + "]")
		}
		return styleChipCursor.Render(" " + label + " ")
	}
	if active {
		return styleChipActive.Render("[" + label + "]")
	}
	return styleMuted.Render(" " + label + " ")
}

func renderButton(label string, focused bool) string {
	if focused {
		return styleButtonFocused.Render(" " + label + " ")
	}
	return styleButton.Render(" " + label + " ")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/flights-cli/internal/models"
	"github.com/mobil-koeln/flights-cli/internal/output"
	"github.com/mobil-koeln/flights-cli/internal/session"
)

// cardHeight is the rendered height of one offer card including its border.
const cardHeight = 5

// renderResultsView renders the search summary and the offer list.
func (m Model) renderResultsView(height int) string {
	summary := m.renderSummary()

	var body string
	switch m.state.Status.Phase {
	case session.PhaseLoading:
		body = " " + m.spinner.View() + styleLoading.Render(" Searching for flights...")
	case session.PhaseError:
		body = styleErrorBox.Render(m.state.Status.Message) + "\n" + styleMuted.Render(" r:retry  e:edit search")
	case session.PhaseSuccess:
		body = m.renderOfferList(height - lipgloss.Height(summary) - 1)
	default:
		body = styleMuted.Render(" No search yet")
	}

	return lipgloss.JoinVertical(lipgloss.Left, summary, body)
}

// renderSummary renders the route, date and passengers of the submitted search.
func (m Model) renderSummary() string {
	q := m.submitted
	route := styleTitle.Render(q.Origin + " → " + q.Destination)

	details := models.FormatDate(q.DepartDate)
	if q.TripType == models.TripRoundTrip && q.ReturnDate != "" {
		details += " - " + models.FormatDate(q.ReturnDate)
	}
	details += " • " + models.PassengerLabel(q.Passengers) + " • " + q.TripType.Label()

	edit := renderButton("Edit search (e)", false)
	left := lipgloss.JoinVertical(lipgloss.Left, route, styleMuted.Render(details))

	return stylePanelNormal.Width(max(m.width-2, 20)).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, left, "   ", edit),
	)
}

// renderOfferList renders the sort selector and as many offer cards as fit.
func (m Model) renderOfferList(height int) string {
	offers := m.sortedOffers()

	if len(offers) == 0 {
		return styleMuted.Render(" No flights found. Try another search.")
	}

	count := fmt.Sprintf("%d flights found", len(offers))
	if len(offers) == 1 {
		count = "1 flight found"
	}

	var sorts strings.Builder
	for _, o := range models.SortOrders {
		sorts.WriteString(renderChip(o.String(), o == m.sortOrder, false))
		sorts.WriteString(" ")
	}

	header := styleHeader.Render(" "+count) + "   " + styleMuted.Render("Sort:") + " " + sorts.String()

	maxVisible := (height - 1) / cardHeight
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.resultCursor, len(offers), maxVisible)

	cards := []string{header}
	for i := start; i < end; i++ {
		cards = append(cards, m.renderOffer(offers[i], i == m.resultCursor))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderOffer renders one offer card.
func (m Model) renderOffer(o models.FlightOffer, selected bool) string {
	border := stylePanelNormal
	if selected {
		border = stylePanelFocused
	}

	airline := styleAirline.Render(o.Airline) + " " + styleMuted.Render(o.FlightNumber)

	dep := styleTime.Render(o.Departure.Time) + " " + styleAirport.Render(o.Departure.Airport)
	arr := styleTime.Render(o.Arrival.Time) + " " + styleAirport.Render(o.Arrival.Airport)
	leg := dep + styleMuted.Render(" ── "+o.Duration+" ── ") + arr

	cities := styleMuted.Render(o.Departure.City + " → " + o.Arrival.City + " · " + o.Stops)

	price := styleRating.Render("★ "+output.FormatRating(o.Rating)) + "  " + stylePrice.Render(output.FormatPrice(o.Price))

	left := lipgloss.JoinVertical(lipgloss.Left, airline, leg, cities)
	return border.Width(max(m.width-2, 20)).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, left, "    ", price),
	)
}

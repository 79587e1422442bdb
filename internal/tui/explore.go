package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const exploreCardsPerRow = 3

// renderExploreView renders the destination cards.
func (m Model) renderExploreView() string {
	title := styleTitle.Render(" Explore destinations")

	var rows []string
	for start := 0; start < len(m.destinations); start += exploreCardsPerRow {
		end := min(start+exploreCardsPerRow, len(m.destinations))
		var cards []string
		for i := start; i < end; i++ {
			cards = append(cards, renderDestination(m.destinations[i], i == m.exploreCursor, true))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)
}

// renderTripsView renders the (always empty) booked trips list.
func (m Model) renderTripsView() string {
	lines := []string{
		styleTitle.Render("My trips"),
		"",
		styleMuted.Render("✈"),
		styleMuted.Render("No trips booked yet"),
		"",
		renderButton("Search for flights", true),
	}

	return stylePanelNormal.
		Width(max(m.width-2, 20)).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

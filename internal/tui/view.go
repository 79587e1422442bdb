package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/flights-cli/internal/session"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Layout: header + active view + status bar
	header := m.renderHeader()
	statusBar := m.renderStatusBar()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	switch m.state.View {
	case session.ViewResults:
		body = m.renderResultsView(bodyHeight)
	case session.ViewExplore:
		body = m.renderExploreView()
	case session.ViewTrips:
		body = m.renderTripsView()
	default:
		body = m.renderSearchView()
	}

	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
}

// renderHeader renders the brand and the navigation tabs.
func (m Model) renderHeader() string {
	brand := styleLogo.Render(" ✈ Flights ")

	var tabs []string
	for i, v := range session.Views {
		if v == session.ViewResults && !m.state.Searched() {
			continue
		}
		label := keyHint(i) + " " + v.Title()
		if v == m.state.View {
			tabs = append(tabs, styleTabActive.Render(label))
		} else {
			tabs = append(tabs, styleTab.Render(label))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, append([]string{brand, "  "}, tabs...)...)
	rule := styleMuted.Render(strings.Repeat("─", max(m.width, 1)))
	return bar + "\n" + rule
}

func keyHint(i int) string {
	return "F" + string(rune('1'+i))
}

// renderStatusBar renders context-aware keyboard hints at the bottom.
func (m Model) renderStatusBar() string {
	var hints string
	switch m.state.View {
	case session.ViewSearch:
		switch m.focus {
		case focusTrip:
			hints = "h/l:choose  Enter:select  Tab:next  F1-F4:tabs  q:quit"
		case focusPassengers:
			hints = "-/+:passengers  Enter:search  Tab:next  F1-F4:tabs  q:quit"
		case focusTiles:
			hints = "h/j/k/l:move  Enter:set destination  Tab:next  F1-F4:tabs  q:quit"
		case focusSwap:
			hints = "Enter:swap  Tab:next  F1-F4:tabs  q:quit"
		case focusSubmit:
			hints = "Enter:search  Tab:next  F1-F4:tabs  q:quit"
		default:
			hints = "Enter:search  Tab:next  Ctrl+X:swap  F1-F4:tabs  Ctrl+C:quit"
		}
	case session.ViewResults:
		hints = "j/k:navigate  s:sort  e:edit search  1-4:tabs  q:quit"
	case session.ViewExplore:
		hints = "h/l:move  Enter:fly there  Esc:search  1-4:tabs  q:quit"
	case session.ViewTrips:
		hints = "Enter:search flights  1-4:tabs  q:quit"
	}

	return styleStatusBar.Width(m.width).Render(" " + hints)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

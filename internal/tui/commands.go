package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/flights-cli/internal/search"
	"github.com/mobil-koeln/flights-cli/internal/session"
)

// runSearch returns a tea.Cmd that runs a submitted search.
// The caller owns ctx and cancels it when the search is superseded.
func runSearch(ctx context.Context, searcher search.Searcher, ticket session.Ticket) tea.Cmd {
	return func() tea.Msg {
		offers, err := searcher.Search(ctx, ticket.Query)
		return searchResultMsg{
			seq:    ticket.Seq,
			offers: offers,
			err:    err,
		}
	}
}

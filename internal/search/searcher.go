// Package search provides the data sources the search form submits to.
package search

//go:generate mockgen -source=searcher.go -destination=mock_searcher.go -package=search

import (
	"context"

	"github.com/mobil-koeln/flights-cli/internal/models"
)

// Searcher fetches flight offers for a query.
// Implementations must honour ctx cancellation.
type Searcher interface {
	Search(ctx context.Context, q models.SearchQuery) ([]models.FlightOffer, error)
}

package search

import (
	"context"

	"github.com/mobil-koeln/flights-cli/internal/api"
	"github.com/mobil-koeln/flights-cli/internal/models"
)

// OffersClient is the subset of api.Client the remote searcher needs.
type OffersClient interface {
	SearchOffers(ctx context.Context, req api.OffersRequest) ([]models.FlightOffer, error)
}

// RemoteSearcher queries the live offers backend.
type RemoteSearcher struct {
	client OffersClient
}

// NewRemoteSearcher creates a searcher backed by client.
func NewRemoteSearcher(client OffersClient) *RemoteSearcher {
	return &RemoteSearcher{client: client}
}

// Search converts the query to an economy/USD request and forwards it.
func (s *RemoteSearcher) Search(ctx context.Context, q models.SearchQuery) ([]models.FlightOffer, error) {
	return s.client.SearchOffers(ctx, api.NewOffersRequest(q))
}

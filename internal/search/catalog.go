package search

import (
	"context"
	"time"

	"github.com/mobil-koeln/flights-cli/internal/models"
)

// DefaultDelay is the simulated latency of the catalog searcher.
const DefaultDelay = 2 * time.Second

var catalog = []models.FlightOffer{
	{
		ID:           1,
		Airline:      "American Airlines",
		FlightNumber: "AA1234",
		Departure:    models.Endpoint{Time: "08:30", Airport: "JFK", City: "New York"},
		Arrival:      models.Endpoint{Time: "11:45", Airport: "LAX", City: "Los Angeles"},
		Duration:     "5h 15m",
		Stops:        "Nonstop",
		Price:        299,
		Rating:       4.2,
	},
	{
		ID:           2,
		Airline:      "Delta Air Lines",
		FlightNumber: "DL5678",
		Departure:    models.Endpoint{Time: "14:20", Airport: "JFK", City: "New York"},
		Arrival:      models.Endpoint{Time: "17:55", Airport: "LAX", City: "Los Angeles"},
		Duration:     "5h 35m",
		Stops:        "Nonstop",
		Price:        329,
		Rating:       4.5,
	},
	{
		ID:           3,
		Airline:      "United Airlines",
		FlightNumber: "UA9012",
		Departure:    models.Endpoint{Time: "19:10", Airport: "JFK", City: "New York"},
		Arrival:      models.Endpoint{Time: "22:30", Airport: "LAX", City: "Los Angeles"},
		Duration:     "5h 20m",
		Stops:        "Nonstop",
		Price:        279,
		Rating:       4.0,
	},
}

// DefaultOffers returns a copy of the fixed offer catalog.
func DefaultOffers() []models.FlightOffer {
	out := make([]models.FlightOffer, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogSearcher answers every query with a fixed catalog after a delay.
// The query contents do not influence the result.
type CatalogSearcher struct {
	delay  time.Duration
	offers []models.FlightOffer
}

// CatalogOption configures a CatalogSearcher.
type CatalogOption func(*CatalogSearcher)

// WithDelay sets the simulated latency. Negative values are treated as zero.
func WithDelay(d time.Duration) CatalogOption {
	return func(s *CatalogSearcher) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithOffers replaces the catalog.
func WithOffers(offers []models.FlightOffer) CatalogOption {
	return func(s *CatalogSearcher) {
		s.offers = make([]models.FlightOffer, len(offers))
		copy(s.offers, offers)
	}
}

// NewCatalogSearcher creates a searcher over the default catalog.
func NewCatalogSearcher(opts ...CatalogOption) *CatalogSearcher {
	s := &CatalogSearcher{
		delay:  DefaultDelay,
		offers: DefaultOffers(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay returns the configured latency.
func (s *CatalogSearcher) Delay() time.Duration {
	return s.delay
}

// Search waits for the delay and returns a copy of the catalog.
func (s *CatalogSearcher) Search(ctx context.Context, _ models.SearchQuery) ([]models.FlightOffer, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]models.FlightOffer, len(s.offers))
	copy(out, s.offers)
	return out, nil
}

package search

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mobil-koeln/flights-cli/internal/logger"
	"github.com/mobil-koeln/flights-cli/internal/models"
)

// LoggingSearcher records every search with a unique id and its duration.
type LoggingSearcher struct {
	next Searcher
	log  *logger.Logger
	now  func() time.Time
}

// WithLogging wraps next. A nil log disables output.
func WithLogging(next Searcher, log *logger.Logger) *LoggingSearcher {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingSearcher{next: next, log: log, now: time.Now}
}

// Search delegates to the wrapped searcher.
func (s *LoggingSearcher) Search(ctx context.Context, q models.SearchQuery) ([]models.FlightOffer, error) {
	l := s.log.WithSearchID(uuid.NewString())
	l.Debug().
		Str("origin", q.Origin).
		Str("destination", q.Destination).
		Str("depart_date", q.DepartDate).
		Str("trip_type", string(q.TripType)).
		Int("passengers", q.Passengers).
		Msg("search started")

	start := s.now()
	offers, err := s.next.Search(ctx, q)
	elapsed := s.now().Sub(start)

	if err != nil {
		l.Error().
			Err(err).
			Str("origin", q.Origin).
			Str("destination", q.Destination).
			Int64("duration_ms", elapsed.Milliseconds()).
			Msg("search failed")
		return nil, err
	}

	l.Info().
		Str("origin", q.Origin).
		Str("destination", q.Destination).
		Int("count", len(offers)).
		Int64("duration_ms", elapsed.Milliseconds()).
		Msg("search completed")
	return offers, nil
}

// Package session holds the flight-search view model: the form query, the
// active view and the search status, mutated only through its methods.
package session

import (
	"github.com/mobil-koeln/flights-cli/internal/models"
)

// Ticket identifies one submitted search. Results must be resolved with the
// ticket's Seq; results for any other sequence are stale.
type Ticket struct {
	Seq   int
	Query models.SearchQuery
}

// State is the complete view model. The zero value is not ready; use New.
type State struct {
	Query  models.SearchQuery
	View   View
	Status Status

	seq      int
	searched bool
	disposed bool
}

// New returns the initial state: empty form, search view, idle.
func New() State {
	return State{
		Query: models.NewSearchQuery(),
		View:  ViewSearch,
	}
}

// SetView switches the active view. It accepts any view unconditionally.
func (s *State) SetView(v View) {
	s.View = v
}

// SwapLocations exchanges origin and destination
func (s *State) SwapLocations() {
	s.Query.Origin, s.Query.Destination = s.Query.Destination, s.Query.Origin
}

// SelectDestination fills the destination from a destination tile.
// The view is left unchanged.
func (s *State) SelectDestination(code string) {
	s.Query.Destination = code
}

// SetTripType switches between round trip and one way
func (s *State) SetTripType(t models.TripType) {
	s.Query.TripType = t
}

// IncPassengers adds a passenger, up to the form maximum
func (s *State) IncPassengers() {
	s.Query.Passengers = models.ClampPassengers(s.Query.Passengers + 1)
}

// DecPassengers removes a passenger, down to one
func (s *State) DecPassengers() {
	s.Query.Passengers = models.ClampPassengers(s.Query.Passengers - 1)
}

// Submit validates the query and starts a search.
//
// On a missing field the status becomes an error with the user-facing
// message and the view does not change. On success the status becomes
// loading, the view switches to results and the returned ticket supersedes
// any search still in flight.
func (s *State) Submit() (Ticket, error) {
	if err := s.Query.Validate(); err != nil {
		s.Status = Status{Phase: PhaseError, Message: models.MissingFieldsMessage}
		return Ticket{}, err
	}

	s.seq++
	s.searched = true
	s.Status = Status{Phase: PhaseLoading}
	s.View = ViewResults

	return Ticket{Seq: s.seq, Query: s.Query.Normalized()}, nil
}

// Resolve applies a search outcome. It returns false, leaving the state
// untouched, when the outcome belongs to a superseded search, nothing is
// loading, or the state has been disposed.
func (s *State) Resolve(seq int, offers []models.FlightOffer, err error) bool {
	if s.disposed || seq != s.seq || !s.Status.Loading() {
		return false
	}

	if err != nil {
		s.Status = Status{Phase: PhaseError, Message: SearchFailedMessage}
		return true
	}
	if offers == nil {
		offers = []models.FlightOffer{}
	}
	s.Status = Status{Phase: PhaseSuccess, Offers: offers}
	return true
}

// Dispose marks the state as torn down; later results are ignored.
func (s *State) Dispose() {
	s.disposed = true
}

// Disposed reports whether Dispose was called
func (s State) Disposed() bool { return s.disposed }

// Searched reports whether any search has been submitted successfully,
// which is what makes the results view reachable from navigation.
func (s State) Searched() bool { return s.searched }

// Seq returns the sequence number of the most recent search
func (s State) Seq() int { return s.seq }

package session

import "github.com/mobil-koeln/flights-cli/internal/models"

// Phase is the lifecycle step of the current search
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseSuccess
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseSuccess:
		return "success"
	default:
		return "idle"
	}
}

// SearchFailedMessage is shown for any failure while fetching offers
const SearchFailedMessage = "Failed to search flights. Please try again."

// Status is the search status. A single Phase field keeps loading and
// error mutually exclusive.
type Status struct {
	Phase   Phase
	Message string
	Offers  []models.FlightOffer
}

// Loading reports whether a search is in flight
func (s Status) Loading() bool { return s.Phase == PhaseLoading }

// Failed reports whether the status carries an error message
func (s Status) Failed() bool { return s.Phase == PhaseError }

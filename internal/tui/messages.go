package tui

import "github.com/mobil-koeln/flights-cli/internal/models"

// searchResultMsg carries the outcome of a submitted search back to the model.
// seq is used for stale-result detection.
type searchResultMsg struct {
	seq    int
	offers []models.FlightOffer
	err    error
}

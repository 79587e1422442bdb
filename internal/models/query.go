package models

import (
	"fmt"
	"strings"
	"time"
)

// Passenger count bounds offered by the search form.
const (
	MinPassengers = 1
	MaxPassengers = 6
)

// DateLayout is the wire and input format for departure and return dates.
const DateLayout = "2006-01-02"

// TripType selects between one-way and round-trip searches
type TripType string

const (
	TripRoundTrip TripType = "roundtrip"
	TripOneWay    TripType = "oneway"
)

// Label returns the human-readable trip type
func (t TripType) Label() string {
	if t == TripOneWay {
		return "One way"
	}
	return "Round trip"
}

// ParseTripType parses a trip type string ("roundtrip", "round-trip", "oneway", "one-way")
func ParseTripType(s string) (TripType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "roundtrip", "round-trip", "round":
		return TripRoundTrip, nil
	case "oneway", "one-way", "one":
		return TripOneWay, nil
	}
	return "", fmt.Errorf("unknown trip type %q (want roundtrip or oneway)", s)
}

// SearchQuery holds the parameters collected by the search form
type SearchQuery struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	DepartDate  string   `json:"departDate"`
	ReturnDate  string   `json:"returnDate,omitempty"`
	Passengers  int      `json:"passengers"`
	TripType    TripType `json:"tripType"`
}

// NewSearchQuery returns the form's initial query: one passenger, round trip.
func NewSearchQuery() SearchQuery {
	return SearchQuery{
		Passengers: MinPassengers,
		TripType:   TripRoundTrip,
	}
}

// Validate checks that origin, destination and departure date are present.
// Only presence is checked; codes and dates are passed through as typed.
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Origin) == "" {
		return ErrRequired("origin")
	}
	if strings.TrimSpace(q.Destination) == "" {
		return ErrRequired("destination")
	}
	if strings.TrimSpace(q.DepartDate) == "" {
		return ErrRequired("departDate")
	}
	return nil
}

// Normalized returns the query as handed to a searcher: whitespace trimmed,
// passengers clamped and the return date dropped for one-way trips.
func (q SearchQuery) Normalized() SearchQuery {
	n := SearchQuery{
		Origin:      strings.TrimSpace(q.Origin),
		Destination: strings.TrimSpace(q.Destination),
		DepartDate:  strings.TrimSpace(q.DepartDate),
		ReturnDate:  strings.TrimSpace(q.ReturnDate),
		Passengers:  ClampPassengers(q.Passengers),
		TripType:    q.TripType,
	}
	if n.TripType != TripOneWay {
		n.TripType = TripRoundTrip
	}
	if n.TripType == TripOneWay {
		n.ReturnDate = ""
	}
	return n
}

// ClampPassengers limits n to the range offered by the form
func ClampPassengers(n int) int {
	if n < MinPassengers {
		return MinPassengers
	}
	if n > MaxPassengers {
		return MaxPassengers
	}
	return n
}

// PassengerLabel renders "1 passenger" / "3 passengers"
func PassengerLabel(n int) string {
	if n == 1 {
		return "1 passenger"
	}
	return fmt.Sprintf("%d passengers", n)
}

// FormatDate renders a YYYY-MM-DD date as "Sun, Jun 1".
// Unparsable input is returned unchanged.
func FormatDate(s string) string {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return t.Format("Mon, Jan 2")
}

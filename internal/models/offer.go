package models

import (
	"strconv"
	"strings"
)

// Endpoint is one end of a flight: local time, airport code and city
type Endpoint struct {
	Time    string `json:"time"`
	Airport string `json:"airport"`
	City    string `json:"city"`
}

// FlightOffer is one priced, scheduled flight returned by a search
type FlightOffer struct {
	ID           int      `json:"id"`
	Airline      string   `json:"airline"`
	FlightNumber string   `json:"flightNumber"`
	Departure    Endpoint `json:"departure"`
	Arrival      Endpoint `json:"arrival"`
	Duration     string   `json:"duration"`
	Stops        string   `json:"stops"`
	Price        int      `json:"price"`
	Rating       float64  `json:"rating"`
}

// DurationMinutes parses Duration ("5h 15m", "5h15m", "45m", "2h") into
// minutes. Returns -1 when the duration cannot be parsed.
func (o FlightOffer) DurationMinutes() int {
	return ParseDurationMinutes(o.Duration)
}

// ParseDurationMinutes parses an "Xh Ym" duration string into minutes.
// Whitespace between the parts is optional.
func ParseDurationMinutes(s string) int {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))
	if s == "" {
		return -1
	}

	total := 0
	for s != "" {
		i := strings.IndexAny(s, "hm")
		if i <= 0 {
			return -1
		}
		n, err := strconv.Atoi(s[:i])
		if err != nil || n < 0 {
			return -1
		}
		unit := 1
		if s[i] == 'h' {
			unit = 60
		}
		total += n * unit
		s = s[i+1:]
	}
	return total
}

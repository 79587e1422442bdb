package models

import (
	"fmt"
	"sort"
	"strings"
)

// SortOrder controls how search results are listed
type SortOrder int

const (
	SortBest SortOrder = iota
	SortCheapest
	SortFastest
)

// SortOrders lists the orders in selector order
var SortOrders = []SortOrder{SortBest, SortCheapest, SortFastest}

func (s SortOrder) String() string {
	switch s {
	case SortCheapest:
		return "Cheapest"
	case SortFastest:
		return "Fastest"
	default:
		return "Best"
	}
}

// Next returns the following order, wrapping around
func (s SortOrder) Next() SortOrder {
	return SortOrders[(int(s)+1)%len(SortOrders)]
}

// ParseSortOrder parses "best", "cheapest" or "fastest"
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "best":
		return SortBest, nil
	case "cheapest", "price":
		return SortCheapest, nil
	case "fastest", "duration":
		return SortFastest, nil
	}
	return SortBest, fmt.Errorf("unknown sort order %q (want best, cheapest or fastest)", s)
}

// SortOffers returns offers in the given order without touching the input.
// SortBest keeps the order the source returned; ties keep source order.
func SortOffers(offers []FlightOffer, order SortOrder) []FlightOffer {
	out := make([]FlightOffer, len(offers))
	copy(out, offers)

	switch order {
	case SortCheapest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortFastest:
		sort.SliceStable(out, func(i, j int) bool {
			return durationKey(out[i]) < durationKey(out[j])
		})
	}
	return out
}

// durationKey sorts unparsable durations last
func durationKey(o FlightOffer) int {
	m := o.DurationMinutes()
	if m < 0 {
		return int(^uint(0) >> 1)
	}
	return m
}

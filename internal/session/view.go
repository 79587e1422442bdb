package session

import (
	"fmt"
	"strings"
)

// View is one of the mutually exclusive top-level screens
type View int

const (
	ViewSearch View = iota
	ViewResults
	ViewExplore
	ViewTrips
)

// Views lists every view in tab order
var Views = []View{ViewSearch, ViewResults, ViewExplore, ViewTrips}

func (v View) String() string {
	switch v {
	case ViewResults:
		return "results"
	case ViewExplore:
		return "explore"
	case ViewTrips:
		return "trips"
	default:
		return "search"
	}
}

// Title is the tab label shown in the navigation bar
func (v View) Title() string {
	switch v {
	case ViewResults:
		return "Results"
	case ViewExplore:
		return "Explore"
	case ViewTrips:
		return "My Trips"
	default:
		return "Search"
	}
}

// ParseView parses a view name
func ParseView(s string) (View, error) {
	for _, v := range Views {
		if strings.EqualFold(strings.TrimSpace(s), v.String()) {
			return v, nil
		}
	}
	return ViewSearch, fmt.Errorf("unknown view %q", s)
}

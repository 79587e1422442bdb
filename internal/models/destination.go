package models

// Destination is a popular destination tile on the search and explore views
type Destination struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Code    string `json:"code"`
	Price   int    `json:"price"`
}

var popularDestinations = []Destination{
	{City: "New York", Country: "USA", Code: "NYC", Price: 299},
	{City: "London", Country: "UK", Code: "LON", Price: 599},
	{City: "Paris", Country: "France", Code: "PAR", Price: 649},
	{City: "Tokyo", Country: "Japan", Code: "NRT", Price: 899},
	{City: "Dubai", Country: "UAE", Code: "DXB", Price: 799},
	{City: "Sydney", Country: "Australia", Code: "SYD", Price: 1199},
}

// PopularDestinations returns a copy of the fixed destination list
func PopularDestinations() []Destination {
	out := make([]Destination, len(popularDestinations))
	copy(out, popularDestinations)
	return out
}

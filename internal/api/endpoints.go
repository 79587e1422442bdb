package api

const (
	// DefaultHost is the RapidAPI host the offers backend is published under
	DefaultHost = "sky-scrapper.p.rapidapi.com"

	// EndpointSearchFlights searches offers between two places
	// Required params: originSkyId, destinationSkyId, originEntityId, destinationEntityId, date, adults
	// Optional params: returnDate, cabinClass, currency
	EndpointSearchFlights = "/api/v2/flights/searchFlightEverywhere"
)

// Fixed request values; the form offers no choice for these.
const (
	DefaultCabinClass = "economy"
	DefaultCurrency   = "USD"
)

// Header names for API authentication
const (
	HeaderAPIKey  = "X-RapidAPI-Key"
	HeaderAPIHost = "X-RapidAPI-Host"
)

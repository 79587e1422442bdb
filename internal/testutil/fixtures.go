package testutil

// Sample JSON responses for API testing

// SampleOffersResponse is a valid offers response with two offers
const SampleOffersResponse = `{
	"status": true,
	"message": "",
	"data": [
		{
			"id": 11,
			"airline": "JetBlue",
			"flightNumber": "B6123",
			"departure": {"time": "07:00", "airport": "JFK", "city": "New York"},
			"arrival": {"time": "10:20", "airport": "LAX", "city": "Los Angeles"},
			"duration": "6h 20m",
			"stops": "Nonstop",
			"price": 249,
			"rating": 4.1
		},
		{
			"id": 12,
			"airline": "Alaska Airlines",
			"flightNumber": "AS77",
			"departure": {"time": "12:15", "airport": "JFK", "city": "New York"},
			"arrival": {"time": "17:40", "airport": "LAX", "city": "Los Angeles"},
			"duration": "8h 25m",
			"stops": "1 stop",
			"price": 199,
			"rating": 3.8
		}
	]
}`

// SampleEmptyOffersResponse is a successful response without offers
const SampleEmptyOffersResponse = `{"status": true, "data": []}`

// SampleFailedResponse is a 200 response that reports a backend failure
const SampleFailedResponse = `{"status": false, "message": "Something went wrong", "data": null}`

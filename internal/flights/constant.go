package flights

import "jarvis-backend/internal/model"

// Results are capped after price sorting.
const maxResults = 5

// cityCodes maps known city names to IATA airport codes. Unknown cities fall
// back to the first three letters uppercased.
var cityCodes = map[string]string{
	"delhi":     "DEL",
	"bangalore": "BLR",
	"bengaluru": "BLR",
	"mumbai":    "BOM",
	"chennai":   "MAA",
	"kolkata":   "CCU",
	"hyderabad": "HYD",
	"pune":      "PNQ",
	"goa":       "GOI",
	"jaipur":    "JAI",
	"new york":  "JFK",
	"london":    "LHR",
	"dubai":     "DXB",
	"singapore": "SIN",
}

// timeRanges maps a day-part to a departure-hour window [start, end).
// Night wraps past midnight.
var timeRanges = map[string][2]int{
	"morning":   {6, 12},
	"afternoon": {12, 16},
	"evening":   {16, 22},
	"night":     {22, 6},
}

// catalog is the static result set returned for every route. A real
// Skyscanner or Amadeus integration would replace this.
var catalog = []model.Flight{
	{
		Airline:       "IndiGo",
		FlightNumber:  "6E-2045",
		DepartureTime: "17:25",
		ArrivalTime:   "19:55",
		Duration:      "2h 30m",
		Price:         7200,
		Currency:      "INR",
		Direct:        true,
		Stops:         0,
	},
	{
		Airline:       "Air India",
		FlightNumber:  "AI-512",
		DepartureTime: "18:15",
		ArrivalTime:   "20:50",
		Duration:      "2h 35m",
		Price:         8500,
		Currency:      "INR",
		Direct:        true,
		Stops:         0,
	},
	{
		Airline:       "SpiceJet",
		FlightNumber:  "SG-134",
		DepartureTime: "19:00",
		ArrivalTime:   "21:35",
		Duration:      "2h 35m",
		Price:         6800,
		Currency:      "INR",
		Direct:        true,
		Stops:         0,
	},
}

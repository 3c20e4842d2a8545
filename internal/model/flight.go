package model

// Flight is a single flight search result.
type Flight struct {
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flight_number"`
	DepartureTime string  `json:"departure_time"` // HH:MM, 24-hour
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Direct        bool    `json:"direct"`
	Stops         int     `json:"stops"`
}

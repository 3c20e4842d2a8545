package flights

import "jarvis-backend/internal/model"

// SearchResult is the outcome of one search. Date is normalized to YYYY-MM-DD.
type SearchResult struct {
	Flights     []model.Flight `json:"flights"`
	Count       int            `json:"count"`
	Source      string         `json:"source"`
	SourceCode  string         `json:"source_code"`
	Destination string         `json:"destination"`
	DestCode    string         `json:"destination_code"`
	Date        string         `json:"date"`
}

package flights

import (
	"context"
	"errors"
)

// ErrUnparsableDate signals a travel date the service could not understand.
var ErrUnparsableDate = errors.New("unparsable travel date")

// SearchInput carries one flight search. Preferences use the memory
// preference keys (airline_pref, max_price, flight_type).
type SearchInput struct {
	Source      string
	Destination string
	Date        string
	TimeWindow  string
	Preferences map[string]string
}

// Service searches flights for a route and date.
type Service interface {
	Search(ctx context.Context, input SearchInput) (SearchResult, error)
}

package flights

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"jarvis-backend/internal/model"
	pkgLog "jarvis-backend/pkg/log"
)

type service struct {
	l pkgLog.Logger
}

// New creates the flight search service backed by the static catalog.
func New(l pkgLog.Logger) Service {
	return &service{l: l}
}

func (s *service) Search(ctx context.Context, input SearchInput) (SearchResult, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		s.l.Warnf(ctx, "flights: unparsable date %q", input.Date)
		return SearchResult{}, err
	}

	sourceCode := airportCode(input.Source)
	destCode := airportCode(input.Destination)

	matched := filterFlights(catalog, input.TimeWindow, input.Preferences)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Price < matched[j].Price
	})
	if len(matched) > maxResults {
		matched = matched[:maxResults]
	}

	s.l.Infof(ctx, "flights: %s->%s on %s, %d results", sourceCode, destCode, date, len(matched))

	return SearchResult{
		Flights:     matched,
		Count:       len(matched),
		Source:      input.Source,
		SourceCode:  sourceCode,
		Destination: input.Destination,
		DestCode:    destCode,
		Date:        date,
	}, nil
}

var ordinalRe = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)`)

var dateLayouts = []string{
	"2006-01-02",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02/01/2006",
	"2/1/2006",
}

// parseDate normalizes a travel date expression to YYYY-MM-DD.
func parseDate(raw string) (string, error) {
	cleaned := ordinalRe.ReplaceAllString(strings.TrimSpace(raw), "$1")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnparsableDate, raw)
}

func airportCode(city string) string {
	lowered := strings.ToLower(strings.TrimSpace(city))
	if code, ok := cityCodes[lowered]; ok {
		return code
	}
	if len(lowered) < 3 {
		return strings.ToUpper(lowered)
	}
	return strings.ToUpper(lowered[:3])
}

func filterFlights(all []model.Flight, timeWindow string, prefs map[string]string) []model.Flight {
	out := make([]model.Flight, 0, len(all))
	for _, f := range all {
		if timeWindow != "" && !inTimeWindow(f.DepartureTime, timeWindow) {
			continue
		}
		if airline := prefs[model.PrefAirline]; airline != "" && f.Airline != airline {
			continue
		}
		if maxPrice, err := strconv.ParseFloat(prefs[model.PrefMaxPrice], 64); err == nil && f.Price > maxPrice {
			continue
		}
		if prefs[model.PrefFlightType] == "direct" && !f.Direct {
			continue
		}
		out = append(out, f)
	}
	return out
}

// inTimeWindow checks the departure hour against the day-part window.
// Unknown windows match everything.
func inTimeWindow(departure, window string) bool {
	bounds, ok := timeRanges[strings.ToLower(window)]
	if !ok {
		return true
	}

	hour, err := strconv.Atoi(strings.SplitN(departure, ":", 2)[0])
	if err != nil {
		return false
	}

	start, end := bounds[0], bounds[1]
	if start <= end {
		return start <= hour && hour < end
	}
	// Window wraps midnight, e.g. night 22-6.
	return hour >= start || hour < end
}

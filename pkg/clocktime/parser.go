package clocktime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves spoken clock times ("6:30 am", "18:30") to absolute instants.
type Parser struct {
	location *time.Location
}

// NewParser creates a clock parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone the parser resolves clock times in.
func (p *Parser) Location() *time.Location {
	return p.location
}

var clockRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)

// ParseClock parses a clock expression into an hour and minute.
// Accepts 12-hour ("6:30 am", "7 pm") and 24-hour ("18:30", "6") forms.
func (p *Parser) ParseClock(s string) (int, int, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	matches := clockRe.FindStringSubmatch(s)
	if matches == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnparsable, s)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute := 0
	if matches[2] != "" {
		minute, _ = strconv.Atoi(matches[2])
	}
	meridiem := matches[3]

	if minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute out of range in %q", ErrUnparsable, s)
	}

	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: hour out of range in %q", ErrUnparsable, s)
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: hour out of range in %q", ErrUnparsable, s)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, 0, fmt.Errorf("%w: hour out of range in %q", ErrUnparsable, s)
		}
	}

	return hour, minute, nil
}

// NextOccurrence resolves a clock expression to the next future occurrence
// after base in the parser's timezone, returned in UTC. A clock time equal to
// or earlier than base rolls over to the following day.
func (p *Parser) NextOccurrence(clock string, base time.Time) (time.Time, error) {
	hour, minute, err := p.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	local := base.In(p.location)
	candidate := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, p.location)
	if !candidate.After(local) {
		candidate = candidate.AddDate(0, 0, 1)
	}

	return candidate.UTC(), nil
}

package intent

import (
	"regexp"
	"strings"

	"jarvis-backend/internal/model"
)

// rulePattern is one high-precision regex for a single intent kind.
// Patterns are evaluated in declaration order; the first match wins.
type rulePattern struct {
	kind model.IntentKind
	re   *regexp.Regexp
}

var rulePatterns = []rulePattern{
	{model.IntentSetAlarm, regexp.MustCompile(`set (?:an? )?alarm (?:for|at) (\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)},
	{model.IntentSetAlarm, regexp.MustCompile(`wake me (?:up )?(?:at|by) (\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)},
	{model.IntentSetAlarm, regexp.MustCompile(`remind me (?:at|by) (\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)},
	{model.IntentDeleteAlarm, regexp.MustCompile(`delete (?:the )?alarm`)},
	{model.IntentDeleteAlarm, regexp.MustCompile(`cancel (?:the )?alarm`)},
	{model.IntentDeleteAlarm, regexp.MustCompile(`remove (?:the )?alarm`)},
	{model.IntentSearchFlights, regexp.MustCompile(`(?:find|search|show|get).{0,30}flights?`)},
	{model.IntentSearchFlights, regexp.MustCompile(`flights?.{0,30}(?:from|to)`)},
	{model.IntentSearchFlights, regexp.MustCompile(`(?:book|need).{0,30}(?:flight|ticket)`)},
	{model.IntentGetWeather, regexp.MustCompile(`(?:what'?s|how'?s) (?:the )?weather`)},
	{model.IntentGetWeather, regexp.MustCompile(`weather (?:in|for|at)`)},
	{model.IntentGetWeather, regexp.MustCompile(`temperature (?:in|for|at)`)},
}

var (
	flightSourceRe = regexp.MustCompile(`from\s+([a-z\s]+?)(?:\s+to|\s+for|\s+on|$)`)
	flightDestRe   = regexp.MustCompile(`to\s+([a-z\s]+?)(?:\s+on|\s+for|$)`)
	flightDateRe   = regexp.MustCompile(`(?:on\s+)?(\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4})`)
)

// Day-part keywords checked in fixed priority order. When an utterance
// mentions several, only the first is kept (known ambiguity).
var timeWindows = []string{"morning", "afternoon", "evening", "night"}

// extractSlots pulls intent-specific slot values out of the lowercased text.
func extractSlots(kind model.IntentKind, text string, match []string) map[string]string {
	slots := make(map[string]string)

	switch kind {
	case model.IntentSetAlarm:
		if len(match) > 1 && match[1] != "" {
			slots["time"] = strings.TrimSpace(match[1])
		}
	case model.IntentSearchFlights:
		extractFlightSlots(text, slots)
	}

	return slots
}

func extractFlightSlots(text string, slots map[string]string) {
	if m := flightSourceRe.FindStringSubmatch(text); m != nil {
		slots["source"] = strings.TrimSpace(m[1])
	}
	if m := flightDestRe.FindStringSubmatch(text); m != nil {
		slots["destination"] = strings.TrimSpace(m[1])
	}
	if m := flightDateRe.FindStringSubmatch(text); m != nil {
		slots["date"] = m[1]
	}

	for _, window := range timeWindows {
		if strings.Contains(text, window) {
			slots["time_window"] = window
			break
		}
	}
}

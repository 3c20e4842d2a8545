package model

import "time"

// ConversationTurn is one exchange in a user's history. Append-only.
type ConversationTurn struct {
	UserID     string
	Text       string
	IntentKind IntentKind
	Response   string
	Timestamp  time.Time
}

// UserContext carries the per-user state handed to action handlers and the
// response synthesizer. Preferences are owned by the memory provider and
// mutated only through explicit update calls.
type UserContext struct {
	UserID         string
	Preferences    map[string]string
	RecentTurns    []ConversationTurn // most-recent-first, bounded
	IntentSpecific map[string]string  // tailored to the current intent kind
}

// Preference keys persisted per user.
const (
	PrefTimezone    = "timezone"
	PrefAlarmTone   = "alarm_tone"
	PrefUsualWakeup = "usual_wakeup"
	PrefAirline     = "airline_pref"
	PrefMaxPrice    = "max_price"
	PrefSeat        = "seat_pref"
	PrefFlightType  = "flight_type"
)

package model

// IntentKind is the classified purpose of a user utterance.
type IntentKind string

const (
	IntentSetAlarm      IntentKind = "set_alarm"
	IntentDeleteAlarm   IntentKind = "delete_alarm"
	IntentSearchFlights IntentKind = "search_flights"
	IntentBookFlight    IntentKind = "book_flight"
	IntentGetWeather    IntentKind = "get_weather"
	IntentSendMessage   IntentKind = "send_message"
	IntentUnknown       IntentKind = "unknown"
)

// ParseIntentKind maps a raw label to a known kind, defaulting to unknown.
func ParseIntentKind(s string) IntentKind {
	switch IntentKind(s) {
	case IntentSetAlarm, IntentDeleteAlarm, IntentSearchFlights,
		IntentBookFlight, IntentGetWeather, IntentSendMessage:
		return IntentKind(s)
	default:
		return IntentUnknown
	}
}

// Intent is a parsed user utterance: its kind, extracted slots and the
// resolver's confidence. Immutable once produced.
type Intent struct {
	Kind       IntentKind
	Slots      map[string]string
	Confidence float64
	SourceText string
}

// ActionStatus tags the outcome of an action handler.
type ActionStatus string

const (
	ActionSuccess       ActionStatus = "success"
	ActionError         ActionStatus = "error"
	ActionMissingSlots  ActionStatus = "missing_slots"
	ActionNotFound      ActionStatus = "not_found"
	ActionUnimplemented ActionStatus = "unimplemented"
)

// ActionResult is the uniform contract every action handler returns.
type ActionResult struct {
	Status  ActionStatus
	Message string
	Data    map[string]any
}

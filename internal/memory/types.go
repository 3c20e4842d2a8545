package memory

import "jarvis-backend/internal/model"

// DefaultHistoryLimit bounds the history handed to action handlers. Handlers
// only need the last few turns.
const DefaultHistoryLimit = 5

// DefaultPreferences returns the preference set created on a user's first access.
func DefaultPreferences() map[string]string {
	return map[string]string{
		model.PrefTimezone:   "UTC",
		model.PrefAlarmTone:  "default",
		model.PrefFlightType: "any",
	}
}

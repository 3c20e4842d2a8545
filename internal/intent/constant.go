package intent

// Rule-tier matches carry a fixed high confidence; anything at or below the
// threshold falls through to the generative tier.
const (
	RuleConfidence      = 0.9
	AcceptanceThreshold = 0.8
)

const llmSystemPrompt = "You are an expert intent parser. Always respond with valid JSON."

const llmPromptTemplate = `You are an intent parser for a voice assistant. Analyze the user's request and extract:
1. Intent (one of: set_alarm, delete_alarm, search_flights, book_flight, get_weather, send_message, unknown)
2. Slots (key-value pairs of entities)

User request: %q

Respond in JSON format:
{
    "intent": "intent_name",
    "slots": {"key": "value"},
    "confidence": 0.95
}`

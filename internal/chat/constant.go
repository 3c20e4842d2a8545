package chat

import "errors"

// ErrNotConfigured is returned when no generative collaborator is wired.
var ErrNotConfigured = errors.New("chat is not configured")

// SystemPromptPrefix is completed with the current date at call time.
const SystemPromptPrefix = `You are JARVIS, an intelligent AI assistant created to help users with various tasks.
You are helpful, conversational, and knowledgeable.
- For general questions, give accurate and concise answers
- For tasks like alarms or reminders, acknowledge the request conversationally
- Keep responses natural and friendly
- Current date: `

// History bounds: context sent with a message, and the retained cap.
const (
	ContextExchanges = 5
	MaxExchanges     = 10
)

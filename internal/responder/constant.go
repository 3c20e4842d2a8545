package responder

const llmSystemPrompt = "You are Jarvis, a helpful and concise AI assistant."

const flightPromptTemplate = `You are Jarvis, an AI assistant. Present these flight options in a natural, conversational way.

Flight search: %s to %s on %s

Available flights:
%s

Create a brief, helpful response (2-3 sentences) highlighting the best option.`

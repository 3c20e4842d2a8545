package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jarvis-backend/internal/chat"
	"jarvis-backend/pkg/openai"
)

func (uc *implUseCase) Message(ctx context.Context, input chat.MessageInput) (chat.MessageOutput, error) {
	if uc.llm == nil {
		return chat.MessageOutput{}, chat.ErrNotConfigured
	}

	uc.l.Infof(ctx, "chat: message from %s: %q", input.UserID, input.Text)

	prompt := input.Text
	if input.IncludeContext {
		if transcript := uc.transcript(input.UserID); transcript != "" {
			prompt = fmt.Sprintf("Conversation so far:\n%s\nUser: %s", transcript, input.Text)
		}
	}

	reply, err := uc.llm.Complete(ctx, openai.CompleteRequest{
		System:      chat.SystemPromptPrefix + time.Now().Format("January 2, 2006"),
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		return chat.MessageOutput{}, fmt.Errorf("chat completion for %s: %w", input.UserID, err)
	}
	reply = strings.TrimSpace(reply)

	if input.IncludeContext {
		uc.remember(input.UserID, input.Text, reply)
	}

	return chat.MessageOutput{Response: reply}, nil
}

func (uc *implUseCase) ClearHistory(ctx context.Context, userID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	delete(uc.history, userID)
	uc.l.Infof(ctx, "chat: cleared history for %s", userID)
}

// transcript renders the user's recent exchanges for the prompt.
func (uc *implUseCase) transcript(userID string) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	exchanges := uc.history[userID]
	if len(exchanges) > chat.ContextExchanges {
		exchanges = exchanges[len(exchanges)-chat.ContextExchanges:]
	}

	var b strings.Builder
	for _, ex := range exchanges {
		fmt.Fprintf(&b, "User: %s\nAssistant: %s\n", ex.user, ex.assistant)
	}
	return b.String()
}

func (uc *implUseCase) remember(userID, userText, reply string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	exchanges := append(uc.history[userID], exchange{user: userText, assistant: reply})
	if len(exchanges) > chat.MaxExchanges {
		exchanges = exchanges[len(exchanges)-chat.MaxExchanges:]
	}
	uc.history[userID] = exchanges
}

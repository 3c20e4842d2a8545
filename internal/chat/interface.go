package chat

import (
	"context"

	"jarvis-backend/pkg/openai"
)

// Completer is the generative collaborator answering chat messages.
type Completer interface {
	Complete(ctx context.Context, req openai.CompleteRequest) (string, error)
}

// UseCase is the direct-chat surface: messages go straight to the model,
// bypassing intent resolution and command routing.
type UseCase interface {
	Message(ctx context.Context, input MessageInput) (MessageOutput, error)
	ClearHistory(ctx context.Context, userID string)
}

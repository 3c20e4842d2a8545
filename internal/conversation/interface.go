package conversation

import (
	"context"

	"jarvis-backend/internal/model"
)

// Transcriber converts recorded speech to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Speaker converts reply text to speech.
type Speaker interface {
	Speech(ctx context.Context, text string) ([]byte, error)
}

// UseCase runs the conversation pipeline. Process always returns a
// well-formed output; internal failures degrade to an apologetic reply.
type UseCase interface {
	Process(ctx context.Context, input ProcessInput) ProcessOutput
	History(ctx context.Context, userID string, limit int) ([]model.ConversationTurn, error)
}

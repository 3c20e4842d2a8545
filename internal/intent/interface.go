package intent

import (
	"context"

	"jarvis-backend/internal/model"
	"jarvis-backend/pkg/openai"
)

// Resolver classifies raw text into a typed intent with extracted slots.
// Resolve never fails: unclassifiable or erroring input yields IntentUnknown.
type Resolver interface {
	Resolve(ctx context.Context, text string) model.Intent
}

// Completer is the generative classifier used by the fallback tier.
type Completer interface {
	Complete(ctx context.Context, req openai.CompleteRequest) (string, error)
}

package responder

import (
	"context"

	"jarvis-backend/internal/model"
	"jarvis-backend/pkg/openai"
)

// Completer is the generative collaborator used for free-form phrasing.
type Completer interface {
	Complete(ctx context.Context, req openai.CompleteRequest) (string, error)
}

// Synthesizer turns an action result into a natural-language reply. Never
// fails; generation errors fall back to deterministic templates.
type Synthesizer interface {
	Synthesize(ctx context.Context, it model.Intent, result model.ActionResult, uc model.UserContext) string
}

package memory

import (
	"context"

	"jarvis-backend/internal/model"
)

// Provider supplies per-user preferences and recent conversation history.
// It owns default-preference creation; preferences are mutated only through
// SetPreference.
type Provider interface {
	// GetUserContext returns the context relevant to the given intent kind.
	// Never fails: retrieval errors degrade to an empty context.
	GetUserContext(ctx context.Context, userID string, kind model.IntentKind) model.UserContext

	// AppendTurn records one conversation exchange. Append-only.
	AppendTurn(ctx context.Context, turn model.ConversationTurn) error

	// RecentTurns returns up to limit turns, most recent first.
	RecentTurns(ctx context.Context, userID string, limit int) ([]model.ConversationTurn, error)

	// GetPreferences returns the user's preferences, creating defaults on first access.
	GetPreferences(ctx context.Context, userID string) (map[string]string, error)

	// SetPreference updates a single preference key.
	SetPreference(ctx context.Context, userID, key, value string) error
}

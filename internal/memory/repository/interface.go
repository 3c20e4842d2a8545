package repository

import (
	"context"
	"errors"

	"jarvis-backend/internal/model"
)

// ErrPreferencesNotFound signals a user with no stored preferences yet.
var ErrPreferencesNotFound = errors.New("preferences not found")

// Store is the persistence contract for user preferences and conversation
// history. Implementations must be safe for concurrent use.
type Store interface {
	GetPreferences(ctx context.Context, userID string) (map[string]string, error)
	PutPreferences(ctx context.Context, userID string, prefs map[string]string) error

	AppendTurn(ctx context.Context, turn model.ConversationTurn) error
	// RecentTurns returns up to limit turns, most recent first.
	RecentTurns(ctx context.Context, userID string, limit int) ([]model.ConversationTurn, error)
}

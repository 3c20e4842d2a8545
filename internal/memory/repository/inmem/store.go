package inmem

import (
	"context"
	"sync"

	"jarvis-backend/internal/memory/repository"
	"jarvis-backend/internal/model"
)

// Oldest turns are discarded past this per-user bound.
const maxTurnsPerUser = 100

type store struct {
	mu    sync.RWMutex
	prefs map[string]map[string]string
	turns map[string][]model.ConversationTurn
}

// New creates an in-memory memory store. Contents are lost on restart.
func New() repository.Store {
	return &store{
		prefs: make(map[string]map[string]string),
		turns: make(map[string][]model.ConversationTurn),
	}
}

func (s *store) GetPreferences(ctx context.Context, userID string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefs, ok := s.prefs[userID]
	if !ok {
		return nil, repository.ErrPreferencesNotFound
	}

	return clonePrefs(prefs), nil
}

func (s *store) PutPreferences(ctx context.Context, userID string, prefs map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs[userID] = clonePrefs(prefs)
	return nil
}

func (s *store) AppendTurn(ctx context.Context, turn model.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.turns[turn.UserID], turn)
	if len(turns) > maxTurnsPerUser {
		turns = turns[len(turns)-maxTurnsPerUser:]
	}
	s.turns[turn.UserID] = turns

	return nil
}

func (s *store) RecentTurns(ctx context.Context, userID string, limit int) ([]model.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.turns[userID]
	if limit <= 0 || limit > len(turns) {
		limit = len(turns)
	}

	// Stored oldest first, returned most recent first.
	out := make([]model.ConversationTurn, 0, limit)
	for i := len(turns) - 1; i >= len(turns)-limit; i-- {
		out = append(out, turns[i])
	}

	return out, nil
}

func clonePrefs(prefs map[string]string) map[string]string {
	out := make(map[string]string, len(prefs))
	for k, v := range prefs {
		out[k] = v
	}
	return out
}

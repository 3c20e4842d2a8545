package usecase

import (
	"context"
	"errors"
	"fmt"

	"jarvis-backend/internal/memory"
	"jarvis-backend/internal/memory/repository"
	"jarvis-backend/internal/model"
)

func (p *implProvider) GetUserContext(ctx context.Context, userID string, kind model.IntentKind) model.UserContext {
	uc := model.UserContext{
		UserID:         userID,
		Preferences:    map[string]string{},
		IntentSpecific: map[string]string{},
	}

	prefs, err := p.GetPreferences(ctx, userID)
	if err != nil {
		p.l.Warnf(ctx, "memory: loading preferences for %s failed, degrading to empty context: %v", userID, err)
	} else {
		uc.Preferences = prefs
		for _, key := range intentPrefKeys[kind] {
			if v, ok := prefs[key]; ok {
				uc.IntentSpecific[key] = v
			}
		}
	}

	turns, err := p.RecentTurns(ctx, userID, memory.DefaultHistoryLimit)
	if err != nil {
		p.l.Warnf(ctx, "memory: loading history for %s failed, degrading to empty history: %v", userID, err)
	} else {
		uc.RecentTurns = turns
	}

	return uc
}

func (p *implProvider) AppendTurn(ctx context.Context, turn model.ConversationTurn) error {
	if err := p.store.AppendTurn(ctx, turn); err != nil {
		return fmt.Errorf("appending conversation turn: %w", err)
	}
	return nil
}

func (p *implProvider) RecentTurns(ctx context.Context, userID string, limit int) ([]model.ConversationTurn, error) {
	turns, err := p.store.RecentTurns(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("loading recent turns: %w", err)
	}
	return turns, nil
}

func (p *implProvider) GetPreferences(ctx context.Context, userID string) (map[string]string, error) {
	if cached, ok := p.cache.Get(userID); ok {
		return clonePrefs(cached), nil
	}

	prefs, err := p.store.GetPreferences(ctx, userID)
	if errors.Is(err, repository.ErrPreferencesNotFound) {
		prefs = memory.DefaultPreferences()
		if err := p.store.PutPreferences(ctx, userID, prefs); err != nil {
			return nil, fmt.Errorf("creating default preferences: %w", err)
		}
		p.l.Infof(ctx, "memory: created default preferences for %s", userID)
	} else if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}

	p.cache.Add(userID, clonePrefs(prefs))
	return prefs, nil
}

func (p *implProvider) SetPreference(ctx context.Context, userID, key, value string) error {
	prefs, err := p.GetPreferences(ctx, userID)
	if err != nil {
		return err
	}

	prefs[key] = value
	if err := p.store.PutPreferences(ctx, userID, prefs); err != nil {
		return fmt.Errorf("saving preference %s: %w", key, err)
	}

	p.cache.Remove(userID)
	return nil
}

func clonePrefs(prefs map[string]string) map[string]string {
	out := make(map[string]string, len(prefs))
	for k, v := range prefs {
		out[k] = v
	}
	return out
}

package inmem

import (
	"context"
	"sync"

	"jarvis-backend/internal/reminder"
	"jarvis-backend/internal/reminder/repository"
)

type store struct {
	mu      sync.RWMutex
	devices map[string]reminder.DeviceRegistration
}

// New creates an in-memory device store. Contents are lost on restart.
func New() repository.DeviceStore {
	return &store{devices: make(map[string]reminder.DeviceRegistration)}
}

func (s *store) PutDevice(ctx context.Context, reg reminder.DeviceRegistration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.devices[reg.UserID] = reg
	return nil
}

func (s *store) GetDeviceToken(ctx context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, ok := s.devices[userID]
	if !ok {
		return "", repository.ErrDeviceNotFound
	}

	return reg.FCMToken, nil
}

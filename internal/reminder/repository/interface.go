package repository

import (
	"context"
	"errors"

	"jarvis-backend/internal/reminder"
)

// ErrDeviceNotFound signals a user with no registered device.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceStore persists device registrations. One active token per user; a
// new registration replaces the previous one.
type DeviceStore interface {
	PutDevice(ctx context.Context, reg reminder.DeviceRegistration) error
	GetDeviceToken(ctx context.Context, userID string) (string, error)
}

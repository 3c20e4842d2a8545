package reminder

import (
	"context"

	"jarvis-backend/internal/model"
	"jarvis-backend/pkg/fcm"
)

// Pusher delivers a push notification and returns the transport's message id.
type Pusher interface {
	Send(ctx context.Context, req fcm.SendRequest) (string, error)
}

// UseCase manages push reminders and device registrations on top of the
// scheduling engine. Dispatch is the engine's delivery callback.
type UseCase interface {
	Schedule(ctx context.Context, input ScheduleInput) (model.ScheduledJob, error)
	Cancel(ctx context.Context, jobID string) error
	ListForUser(ctx context.Context, userID string) ([]model.ScheduledJob, error)
	RegisterDevice(ctx context.Context, reg DeviceRegistration) (string, error)
	Dispatch(ctx context.Context, job model.ScheduledJob) error
}

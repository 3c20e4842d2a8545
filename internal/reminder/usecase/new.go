package usecase

import (
	"jarvis-backend/internal/reminder"
	"jarvis-backend/internal/reminder/repository"
	"jarvis-backend/internal/scheduler"
	pkgLog "jarvis-backend/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	engine  scheduler.Engine
	devices repository.DeviceStore
	pusher  reminder.Pusher
}

// New creates a new reminder UseCase instance. pusher may be nil when push
// delivery is not configured; fired jobs then fail with a recorded reason.
func New(l pkgLog.Logger, engine scheduler.Engine, devices repository.DeviceStore, pusher reminder.Pusher) *implUseCase {
	return &implUseCase{
		l:       l,
		engine:  engine,
		devices: devices,
		pusher:  pusher,
	}
}

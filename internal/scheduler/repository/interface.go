package repository

import (
	"context"
	"errors"

	"jarvis-backend/internal/model"
)

// ErrJobNotFound signals an unknown job id.
var ErrJobNotFound = errors.New("job not found")

// Store persists scheduled jobs. Implementations must be safe for
// concurrent use; the engine remains the only writer of job status.
type Store interface {
	GetJob(ctx context.Context, jobID string) (model.ScheduledJob, error)
	PutJob(ctx context.Context, job model.ScheduledJob) error
	ListForUser(ctx context.Context, userID string) ([]model.ScheduledJob, error)
}

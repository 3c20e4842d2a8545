package scheduler

import (
	"context"
	"time"

	"jarvis-backend/internal/model"
)

// ScheduleInput describes one job submission. JobID is optional; the engine
// generates one when empty. TriggerTime may carry any location; times without
// one must already be constructed in UTC by the caller.
type ScheduleInput struct {
	JobID       string
	UserID      string
	TriggerTime time.Time
	Payload     model.JobPayload
}

// DispatchFunc performs the deferred action when a job's trigger time
// arrives. A non-nil error drives the job to Failed.
type DispatchFunc func(ctx context.Context, job model.ScheduledJob) error

// Timer is a single pending fire that can be stopped.
type Timer interface {
	Stop() bool
}

// TimerFactory creates a timer that runs fn after d. The default factory
// wraps time.AfterFunc; tests substitute a manual one.
type TimerFactory func(d time.Duration, fn func()) Timer

// Engine holds deferred jobs and fires them at their trigger time.
type Engine interface {
	// Schedule validates and installs a job. Submitting an already-pending
	// JobID replaces the prior job (reschedule). Fails with ErrInvalidTime
	// when the trigger is not strictly in the future.
	Schedule(ctx context.Context, input ScheduleInput) (model.ScheduledJob, error)

	// Cancel is idempotent: cancelling a missing or already-terminal job is a no-op.
	Cancel(ctx context.Context, jobID string) error

	// ListForUser returns a snapshot of the user's jobs ordered by trigger time ascending.
	ListForUser(ctx context.Context, userID string) ([]model.ScheduledJob, error)
}

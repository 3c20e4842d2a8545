package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"jarvis-backend/internal/model"
	"jarvis-backend/internal/scheduler"
	"jarvis-backend/internal/scheduler/repository"
)

func (e *implEngine) Schedule(ctx context.Context, input scheduler.ScheduleInput) (model.ScheduledJob, error) {
	trigger := input.TriggerTime.UTC()
	now := time.Now().UTC()
	if !trigger.After(now) {
		return model.ScheduledJob{}, scheduler.ErrInvalidTime
	}

	jobID := input.JobID
	if jobID == "" {
		jobID = uuid.NewString()
	}

	ent := e.entry(jobID)
	ent.mu.Lock()
	defer ent.mu.Unlock()

	// Reschedule: stop the prior pending timer so exactly one job lives
	// under this id.
	if ent.timer != nil {
		ent.timer.Stop()
		ent.timer = nil
		e.l.Infof(ctx, "scheduler: replacing pending job %s", jobID)
	}

	job := model.ScheduledJob{
		ID:             jobID,
		UserID:         input.UserID,
		TriggerTimeUTC: trigger,
		Payload:        input.Payload,
		Status:         model.JobScheduled,
		CreatedAt:      now,
	}
	if err := e.store.PutJob(ctx, job); err != nil {
		return model.ScheduledJob{}, fmt.Errorf("persisting job %s: %w", jobID, err)
	}

	// The generation stamp lets a stale callback from a replaced timer
	// recognize itself and stand down.
	ent.gen++
	gen := ent.gen
	ent.timer = e.newTimer(trigger.Sub(now), func() {
		e.fire(jobID, gen)
	})

	e.l.Infof(ctx, "scheduler: job %s for %s at %s", jobID, input.UserID, trigger.Format(time.RFC3339))
	return job, nil
}

func (e *implEngine) Cancel(ctx context.Context, jobID string) error {
	ent := e.entry(jobID)
	ent.mu.Lock()
	defer ent.mu.Unlock()

	switch {
	case ent.timer != nil:
		ent.timer.Stop()
		ent.timer = nil
	case ent.dispatching:
		// The timer fired first and delivery is in flight; the fire wins
		// and this cancel is a no-op.
		e.l.Infof(ctx, "scheduler: cancel of %s lost to an in-flight fire", jobID)
		return nil
	}

	job, err := e.store.GetJob(ctx, jobID)
	if err != nil {
		if !errors.Is(err, repository.ErrJobNotFound) {
			e.l.Warnf(ctx, "scheduler: cancel lookup for %s: %v", jobID, err)
		}
		return nil
	}
	if job.Status.Terminal() {
		return nil
	}

	job.Status = model.JobCancelled
	job.TerminalAt = time.Now().UTC()
	if err := e.store.PutJob(ctx, job); err != nil {
		e.l.Errorf(ctx, "scheduler: persisting cancellation of %s: %v", jobID, err)
		return nil
	}

	e.l.Infof(ctx, "scheduler: cancelled job %s", jobID)
	return nil
}

func (e *implEngine) ListForUser(ctx context.Context, userID string) ([]model.ScheduledJob, error) {
	jobs, err := e.store.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing jobs for %s: %w", userID, err)
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].TriggerTimeUTC.Before(jobs[j].TriggerTimeUTC)
	})

	return jobs, nil
}

// fire runs when a job's timer expires. A cancel or replacement that beat
// this callback to the entry lock wins; otherwise the job is marked as
// dispatching so a cancel arriving mid-delivery becomes a no-op.
func (e *implEngine) fire(jobID string, gen uint64) {
	ctx := context.Background()
	ent := e.entry(jobID)

	ent.mu.Lock()
	if ent.timer == nil || ent.gen != gen {
		ent.mu.Unlock()
		return
	}
	ent.timer = nil

	job, err := e.store.GetJob(ctx, jobID)
	if err != nil || job.Status != model.JobScheduled {
		ent.mu.Unlock()
		return
	}
	ent.dispatching = true
	ent.mu.Unlock()

	// Delivery happens outside the entry lock.
	dispatchErr := e.dispatch(ctx, job)

	ent.mu.Lock()
	defer ent.mu.Unlock()
	ent.dispatching = false

	current, err := e.store.GetJob(ctx, jobID)
	if err != nil || current.Status != model.JobScheduled {
		return
	}
	// A reschedule during dispatch replaced the record; leave the new job alone.
	if !current.CreatedAt.Equal(job.CreatedAt) {
		return
	}

	current.TerminalAt = time.Now().UTC()
	if dispatchErr != nil {
		current.Status = model.JobFailed
		current.FailureReason = dispatchErr.Error()
		e.l.Errorf(ctx, "scheduler: job %s delivery failed: %v", jobID, dispatchErr)
	} else {
		current.Status = model.JobSent
		e.l.Infof(ctx, "scheduler: job %s sent", jobID)
	}

	if err := e.store.PutJob(ctx, current); err != nil {
		e.l.Errorf(ctx, "scheduler: persisting terminal state of %s: %v", jobID, err)
	}
}

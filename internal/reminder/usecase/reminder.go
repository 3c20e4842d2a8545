package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"jarvis-backend/internal/model"
	"jarvis-backend/internal/reminder"
	"jarvis-backend/internal/reminder/repository"
	"jarvis-backend/internal/scheduler"
	"jarvis-backend/pkg/fcm"
)

func (uc *implUseCase) Schedule(ctx context.Context, input reminder.ScheduleInput) (model.ScheduledJob, error) {
	job, err := uc.engine.Schedule(ctx, scheduler.ScheduleInput{
		JobID:       input.JobID,
		UserID:      input.UserID,
		TriggerTime: input.TriggerTime,
		Payload: model.JobPayload{
			Kind:  "reminder",
			Title: "Reminder",
			Body:  input.Text,
			Data:  input.Data,
		},
	})
	if err != nil {
		return model.ScheduledJob{}, err
	}

	uc.l.Infof(ctx, "reminder: scheduled %s for %s", job.ID, input.UserID)
	return job, nil
}

func (uc *implUseCase) Cancel(ctx context.Context, jobID string) error {
	return uc.engine.Cancel(ctx, jobID)
}

func (uc *implUseCase) ListForUser(ctx context.Context, userID string) ([]model.ScheduledJob, error) {
	return uc.engine.ListForUser(ctx, userID)
}

func (uc *implUseCase) RegisterDevice(ctx context.Context, reg reminder.DeviceRegistration) (string, error) {
	if err := uc.devices.PutDevice(ctx, reg); err != nil {
		return "", fmt.Errorf("storing device for %s: %w", reg.UserID, err)
	}

	registrationID := uuid.NewString()
	uc.l.Infof(ctx, "reminder: registered device %s for %s", reg.DeviceID, reg.UserID)
	return registrationID, nil
}

// Dispatch delivers a fired job as a push notification. Registered with the
// scheduling engine as its delivery callback; a returned error drives the
// job to its Failed state.
func (uc *implUseCase) Dispatch(ctx context.Context, job model.ScheduledJob) error {
	if uc.pusher == nil {
		return errors.New("push delivery not configured")
	}

	token, err := uc.devices.GetDeviceToken(ctx, job.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return fmt.Errorf("no registered device for user %s", job.UserID)
		}
		return fmt.Errorf("looking up device for %s: %w", job.UserID, err)
	}

	messageID, err := uc.pusher.Send(ctx, fcm.SendRequest{
		Token: token,
		Title: job.Payload.Title,
		Body:  job.Payload.Body,
		Data:  job.Payload.Data,
	})
	if err != nil {
		return fmt.Errorf("push delivery: %w", err)
	}

	uc.l.Infof(ctx, "reminder: delivered job %s as %s", job.ID, messageID)
	return nil
}

package http

import (
	"errors"
	"time"

	"jarvis-backend/internal/model"
	"jarvis-backend/internal/reminder"
)

var errBadTriggerTime = errors.New("scheduled_time must be RFC 3339 or YYYY-MM-DDTHH:MM:SS")

// Timestamps without an offset are treated as UTC.
var triggerLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseTriggerTime(raw string) (time.Time, error) {
	for _, layout := range triggerLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errBadTriggerTime
}

// --- Request DTOs ---

type scheduleReq struct {
	UserID        string            `json:"user_id" binding:"required"`
	ReminderText  string            `json:"reminder_text" binding:"required"`
	ScheduledTime string            `json:"scheduled_time" binding:"required"`
	ReminderID    string            `json:"reminder_id"`
	Metadata      map[string]string `json:"metadata"`
}

func (r scheduleReq) toInput() (reminder.ScheduleInput, error) {
	trigger, err := parseTriggerTime(r.ScheduledTime)
	if err != nil {
		return reminder.ScheduleInput{}, err
	}

	return reminder.ScheduleInput{
		JobID:       r.ReminderID,
		UserID:      r.UserID,
		Text:        r.ReminderText,
		TriggerTime: trigger,
		Data:        r.Metadata,
	}, nil
}

type registerDeviceReq struct {
	UserID     string `json:"user_id" binding:"required"`
	FCMToken   string `json:"fcm_token" binding:"required"`
	DeviceID   string `json:"device_id"`
	Platform   string `json:"platform"`
	AppVersion string `json:"app_version"`
}

func (r registerDeviceReq) toRegistration() reminder.DeviceRegistration {
	platform := r.Platform
	if platform == "" {
		platform = "mobile"
	}
	return reminder.DeviceRegistration{
		UserID:     r.UserID,
		FCMToken:   r.FCMToken,
		DeviceID:   r.DeviceID,
		Platform:   platform,
		AppVersion: r.AppVersion,
	}
}

// --- Response DTOs ---

type jobResp struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	TriggerTime   time.Time         `json:"trigger_time"`
	Title         string            `json:"title"`
	Body          string            `json:"body"`
	Data          map[string]string `json:"data,omitempty"`
	Status        string            `json:"status"`
	FailureReason string            `json:"failure_reason,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

func newJobResp(job model.ScheduledJob) jobResp {
	return jobResp{
		ID:            job.ID,
		UserID:        job.UserID,
		TriggerTime:   job.TriggerTimeUTC,
		Title:         job.Payload.Title,
		Body:          job.Payload.Body,
		Data:          job.Payload.Data,
		Status:        string(job.Status),
		FailureReason: job.FailureReason,
		CreatedAt:     job.CreatedAt,
	}
}

type scheduleResp struct {
	Reminder jobResp `json:"reminder"`
}

type listResp struct {
	Reminders []jobResp `json:"reminders"`
	Count     int       `json:"count"`
}

func newListResp(jobs []model.ScheduledJob) listResp {
	out := make([]jobResp, len(jobs))
	for i, job := range jobs {
		out[i] = newJobResp(job)
	}
	return listResp{Reminders: out, Count: len(out)}
}

type registerDeviceResp struct {
	RegistrationID string `json:"registration_id"`
}

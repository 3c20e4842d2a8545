package model

import "time"

// JobStatus is the lifecycle state of a scheduled job.
// Sent, Cancelled and Failed are terminal.
type JobStatus string

const (
	JobScheduled JobStatus = "scheduled"
	JobSent      JobStatus = "sent"
	JobCancelled JobStatus = "cancelled"
	JobFailed    JobStatus = "failed"
)

// Terminal reports whether the status permits no further transitions.
func (s JobStatus) Terminal() bool {
	return s == JobSent || s == JobCancelled || s == JobFailed
}

// JobPayload is the engine-opaque content delivered when a job fires.
type JobPayload struct {
	Kind  string            `json:"kind"` // "alarm" or "reminder"
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// ScheduledJob is a durable record of a future one-time action.
// TriggerTimeUTC is always stored in UTC; the engine is the only writer of Status.
type ScheduledJob struct {
	ID             string
	UserID         string
	TriggerTimeUTC time.Time
	Payload        JobPayload
	Status         JobStatus
	FailureReason  string
	CreatedAt      time.Time
	TerminalAt     time.Time // zero until a terminal state is reached
}

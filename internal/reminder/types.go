package reminder

import "time"

// ScheduleInput describes one push reminder. JobID is optional; passing an
// existing id reschedules that reminder.
type ScheduleInput struct {
	JobID       string
	UserID      string
	Text        string
	TriggerTime time.Time
	Data        map[string]string
}

// DeviceRegistration links a user to an FCM device token.
type DeviceRegistration struct {
	UserID     string
	FCMToken   string
	DeviceID   string
	Platform   string
	AppVersion string
}

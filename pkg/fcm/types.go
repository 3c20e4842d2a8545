package fcm

// SendRequest describes a single push notification.
type SendRequest struct {
	Token string            // FCM device token
	Title string            // Notification title
	Body  string            // Notification body
	Data  map[string]string // Optional key-value payload delivered with the notification
}

package fcm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	fcm "google.golang.org/api/fcm/v1"
	"google.golang.org/api/option"
)

// Client wraps the Firebase Cloud Messaging HTTP v1 API.
type Client struct {
	service   *fcm.Service
	projectID string
}

// NewClientFromCredentialsFile creates an FCM client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates an FCM client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, fcm.FirebaseMessagingScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	var meta struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(credentialsJSON, &meta); err != nil || meta.ProjectID == "" {
		return nil, fmt.Errorf("credentials JSON missing project_id")
	}

	svc, err := fcm.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &Client{service: svc, projectID: meta.ProjectID}, nil
}

// NewClientFromHTTP creates an FCM client from a pre-configured HTTP client,
// optionally pointed at a non-default endpoint. Used in tests.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, endpoint, projectID string) (*Client, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := fcm.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &Client{service: svc, projectID: projectID}, nil
}

// Send delivers a push notification and returns the FCM message name as delivery id.
func (c *Client) Send(ctx context.Context, req SendRequest) (string, error) {
	msg := &fcm.SendMessageRequest{
		Message: &fcm.Message{
			Token: req.Token,
			Notification: &fcm.Notification{
				Title: req.Title,
				Body:  req.Body,
			},
			Data: req.Data,
		},
	}

	parent := fmt.Sprintf("projects/%s", c.projectID)
	sent, err := c.service.Projects.Messages.Send(parent, msg).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send push notification: %w", err)
	}

	return sent.Name, nil
}

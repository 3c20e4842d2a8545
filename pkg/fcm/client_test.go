package fcm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jarvis-backend/pkg/fcm"
)

func TestNewClientFromCredentialsJSON(t *testing.T) {
	t.Run("Broken JSON", func(t *testing.T) {
		_, err := fcm.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})
}

func TestClient_Send(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "projects/test-project/messages:send") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req struct {
			Message struct {
				Token        string `json:"token"`
				Notification struct {
					Title string `json:"title"`
					Body  string `json:"body"`
				} `json:"notification"`
			} `json:"message"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		if req.Message.Token == "broken-token" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":400,"message":"invalid token"}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"name":"projects/test-project/messages/msg-123"}`))
	}))
	defer ts.Close()

	client, err := fcm.NewClientFromHTTP(context.Background(), ts.Client(), ts.URL, "test-project")
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		id, err := client.Send(context.Background(), fcm.SendRequest{
			Token: "device-token",
			Title: "Reminder",
			Body:  "Wake up",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "projects/test-project/messages/msg-123" {
			t.Errorf("unexpected delivery id: %q", id)
		}
	})

	t.Run("Delivery failure surfaces", func(t *testing.T) {
		_, err := client.Send(context.Background(), fcm.SendRequest{Token: "broken-token"})
		if err == nil {
			t.Errorf("expected send failure")
		}
	})
}

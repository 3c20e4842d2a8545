package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jarvis-backend/pkg/openai"
)

func TestClient_Complete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)

		if fail, _ := req["messages"].([]any); len(fail) > 0 {
			last := fail[len(fail)-1].(map[string]any)
			if strings.Contains(last["content"].(string), "error_500") {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello there"}}]}`))
	}))
	defer ts.Close()

	client := openai.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success", func(t *testing.T) {
		out, err := client.Complete(context.Background(), openai.CompleteRequest{
			System: "You are a test.",
			Prompt: "say hello",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "hello there" {
			t.Errorf("unexpected completion: %q", out)
		}
	})

	t.Run("API error surfaces", func(t *testing.T) {
		_, err := client.Complete(context.Background(), openai.CompleteRequest{Prompt: "error_500"})
		if err == nil {
			t.Errorf("expected error for 500 response")
		}
	})

	t.Run("Bad key", func(t *testing.T) {
		c2 := openai.NewClient("wrong-key")
		c2.SetAPIURL(ts.URL)
		_, err := c2.Complete(context.Background(), openai.CompleteRequest{Prompt: "hi"})
		if err == nil {
			t.Errorf("expected auth error")
		}
	})
}

func TestClient_Transcribe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.FormValue("model") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"text":"set an alarm for 7 am"}`))
	}))
	defer ts.Close()

	client := openai.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	text, err := client.Transcribe(context.Background(), []byte("fake-wav-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "set an alarm for 7 am" {
		t.Errorf("unexpected transcript: %q", text)
	}
}

func TestClient_Speech(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/speech" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("binary-audio"))
	}))
	defer ts.Close()

	client := openai.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	audio, err := client.Speech(context.Background(), "Alarm set for 7:00 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(audio) != "binary-audio" {
		t.Errorf("unexpected audio payload: %q", audio)
	}
}

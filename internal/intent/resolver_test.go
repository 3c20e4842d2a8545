package intent_test

import (
	"context"
	"errors"
	"testing"

	"jarvis-backend/internal/intent"
	"jarvis-backend/internal/model"
	"jarvis-backend/pkg/openai"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCompleter struct {
	calls    int
	response string
	err      error
}

func (m *mockCompleter) Complete(ctx context.Context, req openai.CompleteRequest) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestResolve_RuleTier(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		kind     model.IntentKind
		slotKey  string
		slotWant string
	}{
		{name: "Set alarm with time", text: "set an alarm for 6:30 am", kind: model.IntentSetAlarm, slotKey: "time", slotWant: "6:30 am"},
		{name: "Wake me up", text: "Wake me up at 7 AM", kind: model.IntentSetAlarm, slotKey: "time", slotWant: "7 am"},
		{name: "Delete alarm", text: "please cancel the alarm", kind: model.IntentDeleteAlarm},
		{name: "Search flights", text: "find flights from delhi to mumbai on 25 dec 2025", kind: model.IntentSearchFlights, slotKey: "destination", slotWant: "mumbai"},
		{name: "Weather", text: "what's the weather in london", kind: model.IntentGetWeather},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockCompleter{}
			r := intent.New(&mockLogger{}, llm)

			got := r.Resolve(context.Background(), tt.text)
			if got.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", got.Kind, tt.kind)
			}
			if got.Confidence != intent.RuleConfidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, intent.RuleConfidence)
			}
			if llm.calls != 0 {
				t.Errorf("fallback tier invoked %d times for rule input", llm.calls)
			}
			if tt.slotKey != "" && got.Slots[tt.slotKey] != tt.slotWant {
				t.Errorf("slot %s = %q, want %q", tt.slotKey, got.Slots[tt.slotKey], tt.slotWant)
			}
		})
	}
}

func TestResolve_FlightSlots(t *testing.T) {
	r := intent.New(&mockLogger{}, &mockCompleter{})

	got := r.Resolve(context.Background(), "find flights from delhi to goa on 25 dec 2025 in the morning or evening")
	if got.Kind != model.IntentSearchFlights {
		t.Fatalf("kind = %s", got.Kind)
	}
	if got.Slots["source"] != "delhi" {
		t.Errorf("source = %q", got.Slots["source"])
	}
	if got.Slots["date"] != "25 dec 2025" {
		t.Errorf("date = %q", got.Slots["date"])
	}
	// First day-part keyword in priority order wins.
	if got.Slots["time_window"] != "morning" {
		t.Errorf("time_window = %q, want morning", got.Slots["time_window"])
	}
}

func TestResolve_FallbackTier(t *testing.T) {
	t.Run("Invoked exactly once for non-rule input", func(t *testing.T) {
		llm := &mockCompleter{response: `{"intent":"send_message","slots":{"recipient":"mom"},"confidence":0.85}`}
		r := intent.New(&mockLogger{}, llm)

		got := r.Resolve(context.Background(), "remind me about mom's birthday next week")
		if llm.calls != 1 {
			t.Fatalf("fallback called %d times, want 1", llm.calls)
		}
		if got.Kind != model.IntentSendMessage {
			t.Errorf("kind = %s", got.Kind)
		}
		if got.Slots["recipient"] != "mom" {
			t.Errorf("slots = %v", got.Slots)
		}
		if got.Confidence != 0.85 {
			t.Errorf("confidence = %v", got.Confidence)
		}
	})

	t.Run("Code-fenced JSON accepted", func(t *testing.T) {
		llm := &mockCompleter{response: "```json\n{\"intent\":\"get_weather\",\"slots\":{},\"confidence\":0.7}\n```"}
		r := intent.New(&mockLogger{}, llm)

		got := r.Resolve(context.Background(), "tell me something")
		if got.Kind != model.IntentGetWeather {
			t.Errorf("kind = %s", got.Kind)
		}
	})

	t.Run("Unrecognized label maps to unknown", func(t *testing.T) {
		llm := &mockCompleter{response: `{"intent":"order_pizza","slots":{},"confidence":0.9}`}
		r := intent.New(&mockLogger{}, llm)

		got := r.Resolve(context.Background(), "order me a pizza")
		if got.Kind != model.IntentUnknown {
			t.Errorf("kind = %s, want unknown", got.Kind)
		}
	})

	t.Run("LLM failure degrades to unknown", func(t *testing.T) {
		llm := &mockCompleter{err: errors.New("timeout")}
		r := intent.New(&mockLogger{}, llm)

		got := r.Resolve(context.Background(), "gibberish input")
		if got.Kind != model.IntentUnknown || got.Confidence != 0.0 {
			t.Errorf("got %s/%v, want unknown/0.0", got.Kind, got.Confidence)
		}
	})

	t.Run("Malformed output degrades to unknown", func(t *testing.T) {
		llm := &mockCompleter{response: "I think the user wants an alarm"}
		r := intent.New(&mockLogger{}, llm)

		got := r.Resolve(context.Background(), "gibberish input")
		if got.Kind != model.IntentUnknown || got.Confidence != 0.0 {
			t.Errorf("got %s/%v, want unknown/0.0", got.Kind, got.Confidence)
		}
	})
}

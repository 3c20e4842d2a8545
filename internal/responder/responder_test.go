package responder_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jarvis-backend/internal/model"
	"jarvis-backend/internal/responder"
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
	prompt   string
	response string
	err      error
}

func (m *mockCompleter) Complete(ctx context.Context, req openai.CompleteRequest) (string, error) {
	m.calls++
	m.prompt = req.Prompt
	return m.response, m.err
}

func sampleFlights() []model.Flight {
	return []model.Flight{
		{Airline: "SpiceJet", FlightNumber: "SG-134", DepartureTime: "19:00", ArrivalTime: "21:35", Duration: "2h 35m", Price: 6800, Currency: "INR", Direct: true},
		{Airline: "IndiGo", FlightNumber: "6E-2045", DepartureTime: "17:25", ArrivalTime: "19:55", Duration: "2h 30m", Price: 7200, Currency: "INR", Direct: true},
	}
}

func flightData(flightList []model.Flight) map[string]any {
	return map[string]any{
		"flights":     flightList,
		"count":       len(flightList),
		"source":      "delhi",
		"destination": "goa",
		"date":        "2025-12-25",
	}
}

func TestSynthesize_PassThrough(t *testing.T) {
	llm := &mockCompleter{}
	s := responder.New(&mockLogger{}, llm)
	ctx := context.Background()

	tests := []struct {
		name   string
		result model.ActionResult
		want   string
	}{
		{
			name:   "Missing slots",
			result: model.ActionResult{Status: model.ActionMissingSlots, Message: "I need the following information: destination city, travel date"},
			want:   "I need the following information: destination city, travel date",
		},
		{
			name:   "Error",
			result: model.ActionResult{Status: model.ActionError, Message: "Failed to set alarm. Please try again."},
			want:   "Failed to set alarm. Please try again.",
		},
		{
			name:   "Not found",
			result: model.ActionResult{Status: model.ActionNotFound, Message: "You don't have any active alarms."},
			want:   "You don't have any active alarms.",
		},
		{
			name:   "Unimplemented",
			result: model.ActionResult{Status: model.ActionUnimplemented, Message: "Weather service coming soon!"},
			want:   "Weather service coming soon!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Synthesize(ctx, model.Intent{Kind: model.IntentSearchFlights}, tt.result, model.UserContext{})
			if got != tt.want {
				t.Errorf("Synthesize() = %q, want %q", got, tt.want)
			}
			if llm.calls != 0 {
				t.Errorf("generation invoked for pass-through status")
			}
		})
	}
}

func TestSynthesize_Alarms(t *testing.T) {
	s := responder.New(&mockLogger{}, &mockCompleter{})
	ctx := context.Background()

	got := s.Synthesize(ctx, model.Intent{Kind: model.IntentSetAlarm},
		model.ActionResult{Status: model.ActionSuccess, Message: "Alarm set for 7:00 AM"}, model.UserContext{})
	if got != "Alarm set for 7:00 AM" {
		t.Errorf("Synthesize() = %q", got)
	}

	got = s.Synthesize(ctx, model.Intent{Kind: model.IntentDeleteAlarm},
		model.ActionResult{Status: model.ActionSuccess, Message: "Alarm deleted successfully."}, model.UserContext{})
	if got != "Alarm deleted successfully." {
		t.Errorf("Synthesize() = %q", got)
	}
}

func TestSynthesize_Flights(t *testing.T) {
	ctx := context.Background()

	t.Run("Generative phrasing preferred", func(t *testing.T) {
		llm := &mockCompleter{response: "SpiceJet at 19:00 is your best bet at ₹6,800."}
		s := responder.New(&mockLogger{}, llm)

		got := s.Synthesize(ctx, model.Intent{Kind: model.IntentSearchFlights},
			model.ActionResult{Status: model.ActionSuccess, Data: flightData(sampleFlights())}, model.UserContext{})
		if got != "SpiceJet at 19:00 is your best bet at ₹6,800." {
			t.Errorf("Synthesize() = %q", got)
		}
		if llm.calls != 1 {
			t.Errorf("generation called %d times, want 1", llm.calls)
		}
		if !strings.Contains(llm.prompt, "SpiceJet SG-134") {
			t.Errorf("prompt missing flight details: %q", llm.prompt)
		}
	})

	t.Run("Generation failure falls back to cheapest-flight template", func(t *testing.T) {
		llm := &mockCompleter{err: errors.New("timeout")}
		s := responder.New(&mockLogger{}, llm)

		got := s.Synthesize(ctx, model.Intent{Kind: model.IntentSearchFlights},
			model.ActionResult{Status: model.ActionSuccess, Data: flightData(sampleFlights())}, model.UserContext{})
		want := "I found 2 flights. The best option is SpiceJet at 19:00 for ₹6,800, 2h 35m duration."
		if got != want {
			t.Errorf("Synthesize() = %q, want %q", got, want)
		}
	})

	t.Run("No flights", func(t *testing.T) {
		llm := &mockCompleter{}
		s := responder.New(&mockLogger{}, llm)

		got := s.Synthesize(ctx, model.Intent{Kind: model.IntentSearchFlights},
			model.ActionResult{Status: model.ActionSuccess, Data: flightData(nil)}, model.UserContext{})
		want := "I couldn't find any flights from delhi to goa on 2025-12-25."
		if got != want {
			t.Errorf("Synthesize() = %q, want %q", got, want)
		}
		if llm.calls != 0 {
			t.Errorf("generation invoked for empty result")
		}
	})
}

func TestSynthesize_GenericAck(t *testing.T) {
	s := responder.New(&mockLogger{}, &mockCompleter{})

	got := s.Synthesize(context.Background(), model.Intent{Kind: model.IntentSendMessage},
		model.ActionResult{Status: model.ActionSuccess}, model.UserContext{})
	if got != "I've processed your request." {
		t.Errorf("Synthesize() = %q", got)
	}
}

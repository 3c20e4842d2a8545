package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"jarvis-backend/internal/command"
	"jarvis-backend/internal/conversation"
	convUC "jarvis-backend/internal/conversation/usecase"
	"jarvis-backend/internal/flights"
	"jarvis-backend/internal/intent"
	memInmem "jarvis-backend/internal/memory/repository/inmem"
	memUC "jarvis-backend/internal/memory/usecase"
	"jarvis-backend/internal/model"
	"jarvis-backend/internal/responder"
	"jarvis-backend/internal/scheduler"
	schedInmem "jarvis-backend/internal/scheduler/repository/inmem"
	schedUC "jarvis-backend/internal/scheduler/usecase"
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
	response string
	err      error
}

func (m *mockCompleter) Complete(ctx context.Context, req openai.CompleteRequest) (string, error) {
	return m.response, m.err
}

type mockSTT struct {
	text string
	err  error
}

func (m *mockSTT) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return m.text, m.err
}

type mockTTS struct {
	audio []byte
	err   error
	calls int
	texts []string
}

func (m *mockTTS) Speech(ctx context.Context, text string) ([]byte, error) {
	m.calls++
	m.texts = append(m.texts, text)
	return m.audio, m.err
}

// noopTimers keeps scheduled jobs pending so tests never race a real fire.
func noopTimers(d time.Duration, fn func()) scheduler.Timer {
	return stoppedTimer{}
}

type stoppedTimer struct{}

func (stoppedTimer) Stop() bool { return true }

func buildUseCase(llm *mockCompleter, stt conversation.Transcriber, tts conversation.Speaker) conversation.UseCase {
	l := &mockLogger{}

	mem := memUC.New(l, memInmem.New())
	engine := schedUC.New(l, schedInmem.New(), noopDispatch, schedUC.WithTimerFactory(noopTimers))
	flightSvc := flights.New(l)
	router := command.New(l, engine, flightSvc)
	synth := responder.New(l, llm)
	resolver := intent.New(l, llm)

	return convUC.New(l, resolver, mem, router, synth, stt, tts)
}

func noopDispatch(ctx context.Context, job model.ScheduledJob) error { return nil }

func TestProcess_SetAlarmEndToEnd(t *testing.T) {
	tts := &mockTTS{audio: []byte("speech")}
	uc := buildUseCase(&mockCompleter{}, &mockSTT{}, tts)

	out := uc.Process(context.Background(), conversation.ProcessInput{
		UserID: "u1",
		Text:   "Set an alarm for 7 AM",
	})

	if !out.Success {
		t.Fatalf("success = false: %s", out.TextResponse)
	}
	if out.IntentKind != "set_alarm" {
		t.Errorf("intent = %q, want set_alarm", out.IntentKind)
	}
	if !strings.Contains(out.TextResponse, "7:00 AM") {
		t.Errorf("response = %q, want it to contain 7:00 AM", out.TextResponse)
	}
	if out.Confidence != intent.RuleConfidence {
		t.Errorf("confidence = %v", out.Confidence)
	}
	if string(out.AudioResponse) != "speech" {
		t.Errorf("audio = %q", out.AudioResponse)
	}
	if out.Data["status"] != "success" {
		t.Errorf("data = %v", out.Data)
	}

	// The turn is persisted as part of the pass.
	turns, err := uc.History(context.Background(), "u1", 5)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(turns) != 1 || turns[0].Text != "Set an alarm for 7 AM" {
		t.Errorf("turns = %+v", turns)
	}
}

func TestProcess_MissingSlotsPassThrough(t *testing.T) {
	uc := buildUseCase(&mockCompleter{}, &mockSTT{}, &mockTTS{})

	out := uc.Process(context.Background(), conversation.ProcessInput{
		UserID: "u1",
		Text:   "find flights from delhi",
	})

	if !out.Success {
		t.Fatalf("success = false: %s", out.TextResponse)
	}
	if out.IntentKind != "search_flights" {
		t.Errorf("intent = %q", out.IntentKind)
	}
	want := "I need the following information: destination city, travel date"
	if out.TextResponse != want {
		t.Errorf("response = %q, want %q", out.TextResponse, want)
	}
	if out.Data["status"] != "missing_slots" {
		t.Errorf("data = %v", out.Data)
	}
}

func TestProcess_AudioInput(t *testing.T) {
	uc := buildUseCase(&mockCompleter{}, &mockSTT{text: "cancel the alarm"}, &mockTTS{})

	out := uc.Process(context.Background(), conversation.ProcessInput{
		UserID: "u1",
		Audio:  []byte("wav-bytes"),
	})

	if !out.Success {
		t.Fatalf("success = false: %s", out.TextResponse)
	}
	if out.IntentKind != "delete_alarm" {
		t.Errorf("intent = %q, want delete_alarm", out.IntentKind)
	}
	// No alarms exist, so the handler's not-found message passes through.
	if out.TextResponse != "You don't have any active alarms." {
		t.Errorf("response = %q", out.TextResponse)
	}
}

func TestProcess_DegradesToApology(t *testing.T) {
	t.Run("Transcription failure", func(t *testing.T) {
		tts := &mockTTS{audio: []byte("speech")}
		uc := buildUseCase(&mockCompleter{}, &mockSTT{err: errors.New("bad audio")}, tts)

		out := uc.Process(context.Background(), conversation.ProcessInput{
			UserID: "u1",
			Audio:  []byte("???"),
		})

		if out.Success {
			t.Fatal("success = true for failed pipeline")
		}
		want := "I apologize, but I encountered an error processing your request. Please try again."
		if out.TextResponse != want {
			t.Errorf("response = %q", out.TextResponse)
		}
		if out.IntentKind != "error" || out.Confidence != 0.0 {
			t.Errorf("intent = %s/%v", out.IntentKind, out.Confidence)
		}
		// Speech synthesis of the apology is still attempted.
		if tts.calls != 1 || tts.texts[0] != want {
			t.Errorf("tts calls = %d, texts = %v", tts.calls, tts.texts)
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		uc := buildUseCase(&mockCompleter{}, &mockSTT{}, &mockTTS{})

		out := uc.Process(context.Background(), conversation.ProcessInput{UserID: "u1"})
		if out.Success {
			t.Fatal("success = true for empty input")
		}
	})
}

func TestProcess_TTSFailureKeepsTextReply(t *testing.T) {
	uc := buildUseCase(&mockCompleter{}, &mockSTT{}, &mockTTS{err: errors.New("tts down")})

	out := uc.Process(context.Background(), conversation.ProcessInput{
		UserID: "u1",
		Text:   "Set an alarm for 7 AM",
	})

	if !out.Success {
		t.Fatalf("success = false: %s", out.TextResponse)
	}
	if len(out.AudioResponse) != 0 {
		t.Errorf("audio = %q, want empty", out.AudioResponse)
	}
	if !strings.Contains(out.TextResponse, "7:00 AM") {
		t.Errorf("response = %q", out.TextResponse)
	}
}

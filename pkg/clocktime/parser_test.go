package clocktime_test

import (
	"errors"
	"testing"
	"time"

	"jarvis-backend/pkg/clocktime"
)

func TestNewParser(t *testing.T) {
	_, err := clocktime.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = clocktime.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseClock(t *testing.T) {
	parser, _ := clocktime.NewParser("UTC")

	tests := []struct {
		name    string
		clock   string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "12-hour with minutes", clock: "6:30 am", hour: 6, minute: 30},
		{name: "12-hour no minutes", clock: "7 pm", hour: 19},
		{name: "Noon", clock: "12 pm", hour: 12},
		{name: "Midnight", clock: "12 am", hour: 0},
		{name: "24-hour", clock: "18:30", hour: 18, minute: 30},
		{name: "Uppercase with padding", clock: "  7:05 PM ", hour: 19, minute: 5},
		{name: "Bare hour", clock: "6", hour: 6},
		{name: "Hour out of range", clock: "25:00", wantErr: true},
		{name: "Hour out of range 12h", clock: "13 pm", wantErr: true},
		{name: "Minute out of range", clock: "6:75", wantErr: true},
		{name: "Garbage", clock: "half past six", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := parser.ParseClock(tt.clock)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.clock)
				}
				if !errors.Is(err, clocktime.ErrUnparsable) {
					t.Errorf("expected ErrUnparsable, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hour != tt.hour || minute != tt.minute {
				t.Errorf("got %02d:%02d, want %02d:%02d", hour, minute, tt.hour, tt.minute)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	parser, _ := clocktime.NewParser("UTC")
	base := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC) // 3 PM UTC

	t.Run("Later today", func(t *testing.T) {
		got, err := parser.NextOccurrence("6:30 pm", base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Already passed rolls to tomorrow", func(t *testing.T) {
		got, err := parser.NextOccurrence("7 am", base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Exact current time rolls to tomorrow", func(t *testing.T) {
		got, err := parser.NextOccurrence("15:00", base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 3, 11, 15, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Non-UTC zone converts to UTC", func(t *testing.T) {
		ny, _ := clocktime.NewParser("America/New_York")
		// 2025-03-10 is EDT (UTC-4): 7 AM local = 11:00 UTC
		got, err := ny.NextOccurrence("7 am", base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if got.Location() != time.UTC {
			t.Errorf("expected UTC location, got %v", got.Location())
		}
	})

	t.Run("Unparsable clock", func(t *testing.T) {
		_, err := parser.NextOccurrence("sometime soon", base)
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

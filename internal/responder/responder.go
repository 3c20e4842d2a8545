package responder

import (
	"context"
	"fmt"
	"strings"

	"jarvis-backend/internal/model"
	pkgLog "jarvis-backend/pkg/log"
	"jarvis-backend/pkg/openai"
)

type synthesizer struct {
	l   pkgLog.Logger
	llm Completer
}

// New creates the response synthesizer.
func New(l pkgLog.Logger, llm Completer) Synthesizer {
	return &synthesizer{l: l, llm: llm}
}

func (s *synthesizer) Synthesize(ctx context.Context, it model.Intent, result model.ActionResult, uc model.UserContext) string {
	// Non-success messages are already user-facing.
	if result.Status != model.ActionSuccess {
		if result.Message != "" {
			return result.Message
		}
		return "I need more information."
	}

	switch it.Kind {
	case model.IntentSetAlarm:
		if result.Message != "" {
			return result.Message
		}
		return "Your alarm has been set."
	case model.IntentDeleteAlarm:
		if result.Message != "" {
			return result.Message
		}
		return "Alarm deleted."
	case model.IntentSearchFlights:
		return s.flightReply(ctx, result)
	default:
		return "I've processed your request."
	}
}

// flightReply attempts a generative phrasing of the top options and falls
// back to a deterministic template naming the cheapest flight.
func (s *synthesizer) flightReply(ctx context.Context, result model.ActionResult) string {
	flightList, _ := result.Data["flights"].([]model.Flight)
	source, _ := result.Data["source"].(string)
	destination, _ := result.Data["destination"].(string)
	date, _ := result.Data["date"].(string)

	if len(flightList) == 0 {
		return fmt.Sprintf("I couldn't find any flights from %s to %s on %s.", source, destination, date)
	}

	if s.llm != nil {
		prompt := fmt.Sprintf(flightPromptTemplate, source, destination, date, formatFlightsForPrompt(flightList))
		reply, err := s.llm.Complete(ctx, openai.CompleteRequest{
			System:      llmSystemPrompt,
			Prompt:      prompt,
			Temperature: 0.7,
			MaxTokens:   150,
		})
		if err == nil && strings.TrimSpace(reply) != "" {
			return strings.TrimSpace(reply)
		}
		s.l.Warnf(ctx, "responder: flight phrasing failed, using template: %v", err)
	}

	best := flightList[0]
	return fmt.Sprintf("I found %d flights. The best option is %s at %s for ₹%s, %s duration.",
		len(flightList), best.Airline, best.DepartureTime, formatPrice(best.Price), best.Duration)
}

func formatFlightsForPrompt(flightList []model.Flight) string {
	lines := make([]string, 0, 3)
	for i, f := range flightList {
		if i == 3 {
			break
		}
		stops := "non-stop"
		if !f.Direct {
			stops = fmt.Sprintf("%d stop(s)", f.Stops)
		}
		lines = append(lines, fmt.Sprintf("%d. %s %s: Departs %s, arrives %s, ₹%s, %s, %s",
			i+1, f.Airline, f.FlightNumber, f.DepartureTime, f.ArrivalTime, formatPrice(f.Price), f.Duration, stops))
	}
	return strings.Join(lines, "\n")
}

// formatPrice renders a price with thousands separators, e.g. 7200 -> "7,200".
func formatPrice(price float64) string {
	digits := fmt.Sprintf("%.0f", price)

	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

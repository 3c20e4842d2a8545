package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jarvis-backend/internal/conversation"
	"jarvis-backend/internal/model"
)

const apologyMessage = "I apologize, but I encountered an error processing your request. Please try again."

// Process runs the full pipeline: input resolution, intent classification,
// context fetch, turn persistence, action routing, reply synthesis, speech.
// Pipeline failures degrade to the apology reply with Success false; speech
// synthesis of the apology is still attempted.
func (uc *implUseCase) Process(ctx context.Context, input conversation.ProcessInput) conversation.ProcessOutput {
	out, err := uc.run(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "conversation: pipeline failed for %s: %v", input.UserID, err)
		return conversation.ProcessOutput{
			Success:       false,
			TextResponse:  apologyMessage,
			AudioResponse: uc.speak(ctx, apologyMessage),
			IntentKind:    "error",
			Confidence:    0.0,
			Data:          map[string]any{"error": err.Error()},
		}
	}

	return out
}

func (uc *implUseCase) run(ctx context.Context, input conversation.ProcessInput) (conversation.ProcessOutput, error) {
	text, err := uc.textInput(ctx, input)
	if err != nil {
		return conversation.ProcessOutput{}, err
	}
	uc.l.Infof(ctx, "conversation: user %s input %q", input.UserID, text)

	it := uc.resolver.Resolve(ctx, text)
	uc.l.Infof(ctx, "conversation: intent %s (confidence %.2f)", it.Kind, it.Confidence)

	userCtx := uc.mem.GetUserContext(ctx, input.UserID, it.Kind)

	// Fire-and-forget relative to the reply; a storage failure is logged only.
	if err := uc.mem.AppendTurn(ctx, model.ConversationTurn{
		UserID:     input.UserID,
		Text:       text,
		IntentKind: it.Kind,
		Timestamp:  time.Now().UTC(),
	}); err != nil {
		uc.l.Warnf(ctx, "conversation: storing turn for %s failed: %v", input.UserID, err)
	}

	result := uc.router.Route(ctx, it, input.UserID, userCtx)

	textResponse := uc.synth.Synthesize(ctx, it, result, userCtx)

	data := map[string]any{
		"status":  string(result.Status),
		"message": result.Message,
	}
	for k, v := range result.Data {
		data[k] = v
	}

	return conversation.ProcessOutput{
		Success:       true,
		TextResponse:  textResponse,
		AudioResponse: uc.speak(ctx, textResponse),
		IntentKind:    string(it.Kind),
		Confidence:    it.Confidence,
		Data:          data,
	}, nil
}

func (uc *implUseCase) History(ctx context.Context, userID string, limit int) ([]model.ConversationTurn, error) {
	turns, err := uc.mem.RecentTurns(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history for %s: %w", userID, err)
	}
	return turns, nil
}

func (uc *implUseCase) textInput(ctx context.Context, input conversation.ProcessInput) (string, error) {
	if input.Text != "" {
		return input.Text, nil
	}
	if len(input.Audio) == 0 {
		return "", errors.New("no text or audio input")
	}
	if uc.stt == nil {
		return "", errors.New("audio input not supported")
	}

	text, err := uc.stt.Transcribe(ctx, input.Audio)
	if err != nil {
		return "", fmt.Errorf("transcribing audio: %w", err)
	}
	return text, nil
}

// speak attempts speech synthesis. Failures yield a text-only reply.
func (uc *implUseCase) speak(ctx context.Context, text string) []byte {
	if uc.tts == nil {
		return nil
	}

	audio, err := uc.tts.Speech(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "conversation: speech synthesis failed: %v", err)
		return nil
	}
	return audio
}

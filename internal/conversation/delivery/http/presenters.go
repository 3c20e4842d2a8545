package http

import (
	"encoding/base64"
	"time"

	"jarvis-backend/internal/conversation"
	"jarvis-backend/internal/model"
)

// --- Request DTOs ---

type processReq struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text"`
	Audio  string `json:"audio"` // base64-encoded
}

func (r processReq) toInput() (conversation.ProcessInput, error) {
	input := conversation.ProcessInput{
		UserID: r.UserID,
		Text:   r.Text,
	}

	if r.Audio != "" {
		audio, err := base64.StdEncoding.DecodeString(r.Audio)
		if err != nil {
			return conversation.ProcessInput{}, err
		}
		input.Audio = audio
	}

	return input, nil
}

// --- Response DTOs ---

type processResp struct {
	Success       bool           `json:"success"`
	TextResponse  string         `json:"text_response"`
	AudioResponse string         `json:"audio_response,omitempty"` // base64-encoded
	Intent        string         `json:"intent"`
	Confidence    float64        `json:"confidence"`
	Data          map[string]any `json:"data,omitempty"`
}

func newProcessResp(out conversation.ProcessOutput) processResp {
	resp := processResp{
		Success:      out.Success,
		TextResponse: out.TextResponse,
		Intent:       out.IntentKind,
		Confidence:   out.Confidence,
		Data:         out.Data,
	}
	if len(out.AudioResponse) > 0 {
		resp.AudioResponse = base64.StdEncoding.EncodeToString(out.AudioResponse)
	}
	return resp
}

type turnResp struct {
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Intent    string    `json:"intent"`
	Response  string    `json:"response,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type historyResp struct {
	Turns []turnResp `json:"conversations"`
	Count int        `json:"count"`
}

func newHistoryResp(turns []model.ConversationTurn) historyResp {
	out := make([]turnResp, len(turns))
	for i, turn := range turns {
		out[i] = turnResp{
			UserID:    turn.UserID,
			Text:      turn.Text,
			Intent:    string(turn.IntentKind),
			Response:  turn.Response,
			Timestamp: turn.Timestamp,
		}
	}
	return historyResp{Turns: out, Count: len(out)}
}

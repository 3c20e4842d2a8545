package http

import (
	"jarvis-backend/internal/chat"
)

// --- Request DTOs ---

type messageReq struct {
	UserID         string `json:"user_id" binding:"required"`
	Text           string `json:"text" binding:"required"`
	IncludeContext *bool  `json:"include_context"`
}

func (r messageReq) toInput() chat.MessageInput {
	// Context is on unless explicitly disabled.
	includeContext := true
	if r.IncludeContext != nil {
		includeContext = *r.IncludeContext
	}
	return chat.MessageInput{
		UserID:         r.UserID,
		Text:           r.Text,
		IncludeContext: includeContext,
	}
}

// --- Response DTOs ---

type messageResp struct {
	Response string `json:"response"`
}

package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jarvis-backend/pkg/response"
)

// Process godoc
// @Summary     Process a conversation turn
// @Description Accepts text or base64 audio and returns the assistant's reply.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Conversation input"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/conversation [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.l.Infof(ctx, "conversation request from user %s", input.UserID)
	out := h.uc.Process(ctx, input)

	response.OK(c, newProcessResp(out))
}

// History godoc
// @Summary     Conversation history
// @Description Returns a user's recent conversation turns, most recent first.
// @Tags        Conversation
// @Produce     json
// @Param       user_id path  string true  "User ID"
// @Param       limit   query int    false "Max turns (default: 10)"
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversation/history/{user_id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("user_id")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	turns, err := h.uc.History(ctx, userID, limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newHistoryResp(turns))
}

package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-backend/pkg/response"
)

// Message godoc
// @Summary     Direct chat message
// @Description Sends a message straight to the model, bypassing intent
// @Description resolution and command routing. Context is included by default.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Chat message"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Message(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Message: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, messageResp{Response: out.Response})
}

// ClearHistory godoc
// @Summary     Clear chat history
// @Description Drops the user's chat context.
// @Tags        Chat
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/chat/history/{user_id} [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	h.uc.ClearHistory(c.Request.Context(), c.Param("user_id"))
	response.OK(c, nil)
}

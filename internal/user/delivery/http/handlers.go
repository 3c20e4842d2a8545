package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-backend/pkg/response"
)

type preferencesResp struct {
	UserID      string            `json:"user_id"`
	Preferences map[string]string `json:"preferences"`
}

// GetPreferences godoc
// @Summary     Get user preferences
// @Description Returns the user's preferences, creating defaults on first access.
// @Tags        Users
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} preferencesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/users/{user_id}/preferences [GET]
func (h *handler) GetPreferences(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")

	prefs, err := h.mem.GetPreferences(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "mem.GetPreferences: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, preferencesResp{UserID: userID, Preferences: prefs})
}

// UpdatePreferences godoc
// @Summary     Update user preferences
// @Description Merges the provided keys into the user's preferences.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       user_id path string            true "User ID"
// @Param       body    body map[string]string true "Preference keys"
// @Success     200 {object} preferencesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/users/{user_id}/preferences [PUT]
func (h *handler) UpdatePreferences(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")

	var updates map[string]string
	if err := c.ShouldBindJSON(&updates); err != nil {
		response.Error(c, err, nil)
		return
	}

	for key, value := range updates {
		if err := h.mem.SetPreference(ctx, userID, key, value); err != nil {
			h.l.Errorf(ctx, "mem.SetPreference(%s): %v", key, err)
			response.InternalError(c, err)
			return
		}
	}

	prefs, err := h.mem.GetPreferences(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "mem.GetPreferences: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, preferencesResp{UserID: userID, Preferences: prefs})
}

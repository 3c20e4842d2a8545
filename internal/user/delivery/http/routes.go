package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(users *gin.RouterGroup, h Handler) {
	users.GET("/:user_id/preferences", h.GetPreferences)
	users.PUT("/:user_id/preferences", h.UpdatePreferences)
}

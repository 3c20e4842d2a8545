package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(api *gin.RouterGroup, h Handler) {
	api.POST("/reminders", h.Schedule)
	api.DELETE("/reminders/:id", h.Cancel)
	api.GET("/users/:user_id/reminders", h.ListForUser)
	api.POST("/devices", h.RegisterDevice)
}

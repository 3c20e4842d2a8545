package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-backend/internal/reminder"
	"jarvis-backend/pkg/log"
)

// Handler is the public interface for the reminder HTTP delivery layer.
type Handler interface {
	Schedule(c *gin.Context)
	Cancel(c *gin.Context)
	ListForUser(c *gin.Context)
	RegisterDevice(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc reminder.UseCase
}

// New creates a new HTTP handler for the reminder domain.
func New(l log.Logger, uc reminder.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

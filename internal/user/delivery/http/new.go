package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-backend/internal/memory"
	"jarvis-backend/pkg/log"
)

// Handler is the public interface for the user HTTP delivery layer.
type Handler interface {
	GetPreferences(c *gin.Context)
	UpdatePreferences(c *gin.Context)
}

type handler struct {
	l   log.Logger
	mem memory.Provider
}

// New creates a new HTTP handler for user preference management.
func New(l log.Logger, mem memory.Provider) *handler {
	return &handler{
		l:   l,
		mem: mem,
	}
}

package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "jarvis-backend/internal/chat/delivery/http"
	convHTTP "jarvis-backend/internal/conversation/delivery/http"
	"jarvis-backend/internal/middleware"
	remHTTP "jarvis-backend/internal/reminder/delivery/http"
	userHTTP "jarvis-backend/internal/user/delivery/http"
	"jarvis-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Conversation domain
	conversationHandler convHTTP.Handler

	// Direct chat
	chatHandler chatHTTP.Handler

	// Reminder domain
	reminderHandler remHTTP.Handler

	// User preferences
	userHandler userHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	ConversationHandler convHTTP.Handler
	ChatHandler         chatHTTP.Handler
	ReminderHandler     remHTTP.Handler
	UserHandler         userHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.Default(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		mw:                  cfg.Middleware,
		conversationHandler: cfg.ConversationHandler,
		chatHandler:         cfg.ChatHandler,
		reminderHandler:     cfg.ReminderHandler,
		userHandler:         cfg.UserHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

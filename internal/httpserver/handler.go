package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "jarvis-backend/internal/chat/delivery/http"
	convHTTP "jarvis-backend/internal/conversation/delivery/http"
	"jarvis-backend/internal/model"
	remHTTP "jarvis-backend/internal/reminder/delivery/http"
	userHTTP "jarvis-backend/internal/user/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	api.Use(srv.mw.RateLimit())

	if srv.conversationHandler != nil {
		convHTTP.RegisterRoutes(api.Group("/conversation"), srv.conversationHandler)
		srv.l.Infof(ctx, "Conversation routes registered at /api/v1/conversation")
	} else {
		srv.l.Infof(ctx, "Conversation handler not configured, skipping routes")
	}

	if srv.chatHandler != nil {
		chatHTTP.RegisterRoutes(api.Group("/chat"), srv.chatHandler)
		srv.l.Infof(ctx, "Chat routes registered at /api/v1/chat")
	} else {
		srv.l.Infof(ctx, "Chat handler not configured, skipping routes")
	}

	if srv.reminderHandler != nil {
		remHTTP.RegisterRoutes(api, srv.reminderHandler)
		srv.l.Infof(ctx, "Reminder routes registered at /api/v1/reminders")
	} else {
		srv.l.Infof(ctx, "Reminder handler not configured, skipping routes")
	}

	if srv.userHandler != nil {
		userHTTP.RegisterRoutes(api.Group("/users"), srv.userHandler)
		srv.l.Infof(ctx, "User preference routes registered at /api/v1/users")
	} else {
		srv.l.Infof(ctx, "User handler not configured, skipping routes")
	}

	return nil
}

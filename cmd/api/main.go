package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jarvis-backend/config"
	_ "jarvis-backend/docs" // Swagger docs
	"jarvis-backend/internal/chat"
	chatHTTP "jarvis-backend/internal/chat/delivery/http"
	chatUC "jarvis-backend/internal/chat/usecase"
	"jarvis-backend/internal/command"
	"jarvis-backend/internal/conversation"
	convHTTP "jarvis-backend/internal/conversation/delivery/http"
	convUC "jarvis-backend/internal/conversation/usecase"
	"jarvis-backend/internal/flights"
	"jarvis-backend/internal/httpserver"
	"jarvis-backend/internal/intent"
	memInmem "jarvis-backend/internal/memory/repository/inmem"
	memUC "jarvis-backend/internal/memory/usecase"
	"jarvis-backend/internal/middleware"
	"jarvis-backend/internal/model"
	"jarvis-backend/internal/reminder"
	remHTTP "jarvis-backend/internal/reminder/delivery/http"
	remInmem "jarvis-backend/internal/reminder/repository/inmem"
	remUC "jarvis-backend/internal/reminder/usecase"
	"jarvis-backend/internal/responder"
	schedInmem "jarvis-backend/internal/scheduler/repository/inmem"
	schedUC "jarvis-backend/internal/scheduler/usecase"
	userHTTP "jarvis-backend/internal/user/delivery/http"
	"jarvis-backend/pkg/fcm"
	"jarvis-backend/pkg/log"
	"jarvis-backend/pkg/openai"
)

// @title       Jarvis Backend API
// @description Conversational assistant backend: intent resolution, command execution, and deferred push reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Jarvis backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. OpenAI client (optional). Without it intent falls back to rules
	// only, flight replies use templates, and audio I/O is disabled.
	var (
		intentLLM intent.Completer
		replyLLM  responder.Completer
		chatLLM   chat.Completer
		stt       conversation.Transcriber
		tts       conversation.Speaker
	)
	if cfg.OpenAI.APIKey != "" {
		client := openai.NewClient(cfg.OpenAI.APIKey)
		if cfg.OpenAI.ChatModel != "" {
			client.SetChatModel(cfg.OpenAI.ChatModel)
		}
		intentLLM = client
		replyLLM = client
		chatLLM = client
		stt = client
		tts = client
		logger.Info(ctx, "OpenAI client initialized")
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY not set: LLM fallback, speech-to-text, and audio replies disabled")
	}

	// 4. FCM pusher (optional). Without it fired reminders fail with a
	// recorded reason instead of being delivered.
	var pusher reminder.Pusher
	if cfg.Firebase.CredentialsPath != "" {
		fcmClient, fcmErr := fcm.NewClientFromCredentialsFile(ctx, cfg.Firebase.CredentialsPath)
		if fcmErr != nil {
			logger.Warnf(ctx, "Firebase not available (optional): %v", fcmErr)
		} else {
			pusher = fcmClient
			logger.Info(ctx, "Firebase Cloud Messaging initialized")
		}
	} else {
		logger.Warn(ctx, "Firebase credentials not configured, push delivery disabled")
	}

	// 5. Scheduling engine and reminder domain. The engine's dispatch
	// callback closes over the reminder use case assigned right after.
	var reminderUC reminder.UseCase
	engine := schedUC.New(logger, schedInmem.New(),
		func(ctx context.Context, job model.ScheduledJob) error {
			return reminderUC.Dispatch(ctx, job)
		})
	reminderUC = remUC.New(logger, engine, remInmem.New(), pusher)

	// 6. Conversation pipeline
	memProvider := memUC.New(logger, memInmem.New())
	flightSvc := flights.New(logger)
	router := command.New(logger, engine, flightSvc)
	synth := responder.New(logger, replyLLM)
	resolver := intent.New(logger, intentLLM)
	conversationUC := convUC.New(logger, resolver, memProvider, router, synth, stt, tts)
	directChatUC := chatUC.New(logger, chatLLM)

	// 7. HTTP delivery
	conversationHandler := convHTTP.New(logger, conversationUC)
	chatHandler := chatHTTP.New(logger, directChatUC)
	reminderHandler := remHTTP.New(logger, reminderUC)
	userHandler := userHTTP.New(logger, memProvider)

	mw := middleware.New(logger, cfg.Assistant.RateLimitPerMin)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		Middleware:          mw,
		ConversationHandler: conversationHandler,
		ChatHandler:         chatHandler,
		ReminderHandler:     reminderHandler,
		UserHandler:         userHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package usecase

import (
	"jarvis-backend/internal/command"
	"jarvis-backend/internal/conversation"
	"jarvis-backend/internal/intent"
	"jarvis-backend/internal/memory"
	"jarvis-backend/internal/responder"
	pkgLog "jarvis-backend/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	resolver intent.Resolver
	mem      memory.Provider
	router   command.Router
	synth    responder.Synthesizer
	stt      conversation.Transcriber
	tts      conversation.Speaker
}

// New creates a new conversation UseCase instance. stt and tts may be nil;
// audio input is then rejected and replies stay text-only.
func New(
	l pkgLog.Logger,
	resolver intent.Resolver,
	mem memory.Provider,
	router command.Router,
	synth responder.Synthesizer,
	stt conversation.Transcriber,
	tts conversation.Speaker,
) *implUseCase {
	return &implUseCase{
		l:        l,
		resolver: resolver,
		mem:      mem,
		router:   router,
		synth:    synth,
		stt:      stt,
		tts:      tts,
	}
}

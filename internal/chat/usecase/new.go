package usecase

import (
	"sync"

	"jarvis-backend/internal/chat"
	pkgLog "jarvis-backend/pkg/log"
)

// exchange is one user/assistant pair kept for chat context. History lives
// in this use case, separate from the conversation pipeline's turn store.
type exchange struct {
	user      string
	assistant string
}

type implUseCase struct {
	l   pkgLog.Logger
	llm chat.Completer

	mu      sync.Mutex
	history map[string][]exchange
}

// New creates the direct-chat use case. llm may be nil; messages then fail
// with ErrNotConfigured.
func New(l pkgLog.Logger, llm chat.Completer) *implUseCase {
	return &implUseCase{
		l:       l,
		llm:     llm,
		history: make(map[string][]exchange),
	}
}

package usecase

import (
	"sync"
	"time"

	"jarvis-backend/internal/scheduler"
	"jarvis-backend/internal/scheduler/repository"
	pkgLog "jarvis-backend/pkg/log"
)

// jobEntry is the in-memory coordination state for one job id. Its lock
// serializes schedule/cancel/fire for that id only; the dispatch callback
// runs with no lock held.
type jobEntry struct {
	mu          sync.Mutex
	timer       scheduler.Timer // pending timer, nil when none
	gen         uint64          // bumped each time a timer is armed
	dispatching bool            // a fired job's delivery is in flight
}

type implEngine struct {
	l        pkgLog.Logger
	store    repository.Store
	dispatch scheduler.DispatchFunc
	newTimer scheduler.TimerFactory

	// mu guards the entries map only, never any store or dispatch call.
	mu      sync.Mutex
	entries map[string]*jobEntry
}

// Option adjusts engine construction.
type Option func(*implEngine)

// WithTimerFactory substitutes the timer implementation, used by tests to
// fire jobs deterministically.
func WithTimerFactory(f scheduler.TimerFactory) Option {
	return func(e *implEngine) {
		e.newTimer = f
	}
}

type afterFuncTimer struct {
	t *time.Timer
}

func (t afterFuncTimer) Stop() bool {
	return t.t.Stop()
}

// New creates a new scheduling Engine instance. Jobs fire on time.AfterFunc
// timers unless a factory option overrides that.
func New(l pkgLog.Logger, store repository.Store, dispatch scheduler.DispatchFunc, opts ...Option) *implEngine {
	e := &implEngine{
		l:        l,
		store:    store,
		dispatch: dispatch,
		entries:  make(map[string]*jobEntry),
		newTimer: func(d time.Duration, fn func()) scheduler.Timer {
			return afterFuncTimer{t: time.AfterFunc(d, fn)}
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// entry returns the coordination state for jobID, creating it on first use.
func (e *implEngine) entry(jobID string) *jobEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent, ok := e.entries[jobID]
	if !ok {
		ent = &jobEntry{}
		e.entries[jobID] = ent
	}
	return ent
}

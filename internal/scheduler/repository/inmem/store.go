package inmem

import (
	"context"
	"sync"

	"jarvis-backend/internal/model"
	"jarvis-backend/internal/scheduler/repository"
)

type store struct {
	mu   sync.RWMutex
	jobs map[string]model.ScheduledJob
}

// New creates an in-memory job store. Contents are lost on restart.
func New() repository.Store {
	return &store{jobs: make(map[string]model.ScheduledJob)}
}

func (s *store) GetJob(ctx context.Context, jobID string) (model.ScheduledJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return model.ScheduledJob{}, repository.ErrJobNotFound
	}

	return job, nil
}

func (s *store) PutJob(ctx context.Context, job model.ScheduledJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[job.ID] = job
	return nil
}

func (s *store) ListForUser(ctx context.Context, userID string) ([]model.ScheduledJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ScheduledJob, 0)
	for _, job := range s.jobs {
		if job.UserID == userID {
			out = append(out, job)
		}
	}

	return out, nil
}

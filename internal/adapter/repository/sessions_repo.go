package repository

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
)

// SessionsRepo keeps sessions in process memory. Callers only ever see
// copies; mutation goes through Update.
type SessionsRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.Session
}

func NewSessionsRepo() *SessionsRepo {
	return &SessionsRepo{sessions: map[uuid.UUID]*domain.Session{}}
}

func (r *SessionsRepo) Create() *domain.Session {
	s := domain.NewSession()
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s.Clone()
}

func (r *SessionsRepo) Get(id uuid.UUID) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	return s.Clone(), nil
}

// Update runs fn on a working copy and stores it only when fn succeeds, so a
// failed edit leaves the session untouched.
func (r *SessionsRepo) Update(id uuid.UUID, fn func(*domain.Session) error) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	work := s.Clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	r.sessions[id] = work
	return work.Clone(), nil
}

func (r *SessionsRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	delete(r.sessions, id)
	return nil
}

func (r *SessionsRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

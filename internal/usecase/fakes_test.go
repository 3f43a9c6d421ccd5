package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/pkg/ai"
)

// stubCompleter returns a fixed reply or error and records prompts.
type stubCompleter struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []ai.Prompt
	// gate, when set, blocks Complete until it is closed.
	gate    chan struct{}
	entered chan struct{}
}

func (s *stubCompleter) Complete(ctx context.Context, p ai.Prompt) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, p)
	gate, entered := s.gate, s.entered
	s.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.reply, s.err
}

func (s *stubCompleter) Provider() string { return "stub" }
func (s *stubCompleter) Model() string    { return "stub-model" }

func (s *stubCompleter) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

// memStore is a minimal SessionStore used to keep these tests independent
// of the adapter package.
type memStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.Session
}

func newMemStore() *memStore {
	return &memStore{sessions: map[uuid.UUID]*domain.Session{}}
}

func (m *memStore) Create() *domain.Session {
	s := domain.NewSession()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s.Clone()
}

func (m *memStore) Get(id uuid.UUID) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (m *memStore) Update(id uuid.UUID, fn func(*domain.Session) error) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	work := s.Clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	m.sessions[id] = work
	return work.Clone(), nil
}

func (m *memStore) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

type stubRasterizer struct {
	mu    sync.Mutex
	out   []byte
	err   error
	calls int
	html  string
}

func (r *stubRasterizer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.html = html
	return r.out, r.err
}

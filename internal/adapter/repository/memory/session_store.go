package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/repo_interfaces"
	"github.com/atlasbank/retail-banking-demo/internal/domain"
)

var _ repo_interfaces.SessionStore = (*SessionStore)(nil)

// SessionStore keeps every session in process memory. Each session carries its
// own mutex so that ledger operations on one account serialize while
// independent sessions proceed concurrently.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	mu    sync.Mutex
	state domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*sessionEntry)}
}

func (s *SessionStore) Create(_ context.Context, session domain.Session) (domain.Session, error) {
	if session.ID == "" {
		return domain.Session{}, fmt.Errorf("session id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return domain.Session{}, fmt.Errorf("session %s already exists", session.ID)
	}

	s.sessions[session.ID] = &sessionEntry{state: session.Clone()}
	return session.Clone(), nil
}

func (s *SessionStore) Get(_ context.Context, sessionID string) (domain.Session, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.state.Clone(), nil
}

// Update mutates the session state in place under its lock. There is no
// rollback: fn must validate before mutating, except where an operation
// intentionally records a rejected transaction while failing.
func (s *SessionStore) Update(_ context.Context, sessionID string, fn func(session *domain.Session) error) error {
	entry, err := s.entry(sessionID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(&entry.state)
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sessionID]; !exists {
		return domain.ErrSessionNotFound
	}

	delete(s.sessions, sessionID)
	return nil
}

func (s *SessionStore) entry(sessionID string) (*sessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return entry, nil
}

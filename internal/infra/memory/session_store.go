package memory

import (
	"context"
	"sync"

	"quiz-app/internal/app"
	"quiz-app/internal/domain"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*app.Session),
	}
}

func (s *SessionStore) Create(clientID string, quiz domain.Quiz) (*app.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[clientID]; ok {
		return nil, domain.ErrSessionActive
	}
	session, err := app.NewSession(quiz)
	if err != nil {
		return nil, err
	}
	s.sessions[clientID] = session
	return session, nil
}

func (s *SessionStore) Get(clientID string) (*app.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[clientID]
	return session, ok
}

func (s *SessionStore) Delete(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, clientID)
}

// Touch is a no-op: in-memory sessions live until Delete.
func (s *SessionStore) Touch(context.Context, string) {}

// Len reports how many sessions are live.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

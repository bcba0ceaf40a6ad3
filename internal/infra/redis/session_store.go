package redis

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"quiz-app/internal/app"
	"quiz-app/internal/domain"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Notes:
//   - Sessions themselves stay in process; answers and scores never leave it.
//   - Redis only carries a liveness marker per client so operators can see
//     who is mid-quiz across instances. The marker expires after ttl unless
//     Touch refreshes it, so crashed instances do not leave stale entries.
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
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
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(clientID), quiz.ID, s.ttl).Err()
	return session, nil
}

func (s *SessionStore) Get(clientID string) (*app.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[clientID]
	return session, ok
}

// Touch rewrites the marker with a fresh ttl, recreating it if it already expired.
// The read lock is held across the write so a concurrent Delete cannot be undone.
func (s *SessionStore) Touch(ctx context.Context, clientID string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[clientID]
	if !ok {
		return
	}
	if err := s.client.Set(ctx, s.key(clientID), session.QuizID(), s.ttl).Err(); err != nil {
		log.Printf("refresh session marker for %s: %v", clientID, err)
	}
}

func (s *SessionStore) Delete(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[clientID]; !ok {
		return
	}
	delete(s.sessions, clientID)
	_ = s.client.Del(context.Background(), s.key(clientID)).Err()
}

func (s *SessionStore) key(clientID string) string {
	return "quiz:session:" + clientID
}

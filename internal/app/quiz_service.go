package app

import (
	"context"

	"quiz-app/internal/domain"
)

// SessionRepository tracks the live session of each renderer client (in-memory, Redis, etc).
type SessionRepository interface {
	Create(clientID string, quiz domain.Quiz) (*Session, error)
	Get(clientID string) (*Session, bool)
	Delete(clientID string)
	// Touch marks the client as still active. Stores without expiry ignore it.
	Touch(ctx context.Context, clientID string)
}

// QuizRepository loads quiz content (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// QuizService wires quiz content to per-client sessions.
type QuizService struct {
	sessions SessionRepository
	quizzes  QuizRepository
}

func NewQuizService(store SessionRepository, quizzes QuizRepository) *QuizService {
	return &QuizService{sessions: store, quizzes: quizzes}
}

// Start loads the quiz and opens a fresh session for the client.
func (s *QuizService) Start(ctx context.Context, quizID, clientID string) (*Controller, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.Create(clientID, quiz)
	if err != nil {
		return nil, err
	}
	return NewController(session), nil
}

// Controller returns a controller for the client's live session.
func (s *QuizService) Controller(_ context.Context, clientID string) (*Controller, error) {
	session, ok := s.sessions.Get(clientID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return NewController(session), nil
}

// Touch keeps the client's session marked live while it is being played.
func (s *QuizService) Touch(ctx context.Context, clientID string) {
	s.sessions.Touch(ctx, clientID)
}

// Finish drops the client's session. Results are not kept.
func (s *QuizService) Finish(_ context.Context, clientID string) {
	s.sessions.Delete(clientID)
}

package domain

import "errors"

var (
	// ErrSessionNotFound is returned when no session exists for a client.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrSessionActive is returned when a client already has a live session.
	ErrSessionActive = errors.New("client already has an active session")
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrInvalidQuiz indicates quiz content that cannot back a session.
	ErrInvalidQuiz = errors.New("invalid quiz")
	// ErrInvalidQuestion indicates a malformed question.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrQuestionOutOfRange indicates a question index outside the quiz.
	ErrQuestionOutOfRange = errors.New("question index out of range")
	// ErrOptionOutOfRange indicates an option index outside the question.
	ErrOptionOutOfRange = errors.New("option index out of range")
	// ErrIncomplete is returned when submitting with unanswered questions.
	ErrIncomplete = errors.New("not all questions answered")
	// ErrNotTaking is returned when selecting an answer while results are shown.
	ErrNotTaking = errors.New("quiz is not in progress")
)

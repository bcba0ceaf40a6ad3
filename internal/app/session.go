package app

import (
	"fmt"

	"quiz-app/internal/domain"
)

// Session holds one player's progress through a quiz.
// It is driven by a single renderer and is not safe for concurrent use.
type Session struct {
	quiz       domain.Quiz
	selections []domain.Selection
	score      int
	screen     domain.Screen
}

// NewSession validates the quiz and starts a session with every question unanswered.
func NewSession(quiz domain.Quiz) (*Session, error) {
	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		quiz:       quiz,
		selections: make([]domain.Selection, len(quiz.Questions)),
		screen:     domain.ScreenTaking,
	}, nil
}

// SelectAnswer records optionIndex for questionIndex, replacing any earlier choice.
func (s *Session) SelectAnswer(questionIndex, optionIndex int) error {
	if s.screen != domain.ScreenTaking {
		return domain.ErrNotTaking
	}
	if questionIndex < 0 || questionIndex >= len(s.quiz.Questions) {
		return fmt.Errorf("%w: %d not in [0,%d)", domain.ErrQuestionOutOfRange, questionIndex, len(s.quiz.Questions))
	}
	options := len(s.quiz.Questions[questionIndex].Options)
	if optionIndex < 0 || optionIndex >= options {
		return fmt.Errorf("%w: %d not in [0,%d) for question %d", domain.ErrOptionOutOfRange, optionIndex, options, questionIndex)
	}
	s.selections[questionIndex] = domain.Selected(optionIndex)
	return nil
}

// AllAnswered reports whether every question has a selection.
func (s *Session) AllAnswered() bool {
	for _, sel := range s.selections {
		if !sel.IsAnswered() {
			return false
		}
	}
	return true
}

// Submit scores the selections and switches to the results screen.
// It refuses with ErrIncomplete while any question is unanswered.
func (s *Session) Submit() (int, error) {
	if !s.AllAnswered() {
		return 0, domain.ErrIncomplete
	}
	s.score = ScoreSelections(s.quiz.Questions, s.selections)
	s.screen = domain.ScreenResults
	return s.score, nil
}

// Reset clears all selections and returns to the quiz-taking screen.
func (s *Session) Reset() {
	for i := range s.selections {
		s.selections[i] = domain.Unanswered()
	}
	s.score = 0
	s.screen = domain.ScreenTaking
}

func (s *Session) QuizID() string { return s.quiz.ID }

func (s *Session) Title() string { return s.quiz.Title }

// Questions returns a copy of the question set; the session's own set never changes.
func (s *Session) Questions() []domain.Question {
	out := make([]domain.Question, len(s.quiz.Questions))
	for i, q := range s.quiz.Questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// Selections returns a copy of the current selections.
func (s *Session) Selections() []domain.Selection {
	out := make([]domain.Selection, len(s.selections))
	copy(out, s.selections)
	return out
}

// Score is only meaningful on the results screen.
func (s *Session) Score() int { return s.score }

func (s *Session) Screen() domain.Screen { return s.screen }

func (s *Session) Total() int { return len(s.quiz.Questions) }

// ScoreSelections counts selections that match the correct answer.
// Unanswered entries and entries past the end of either slice never count.
func ScoreSelections(questions []domain.Question, selections []domain.Selection) int {
	score := 0
	for i, sel := range selections {
		if i >= len(questions) {
			break
		}
		if sel.Is(questions[i].CorrectAnswerIndex) {
			score++
		}
	}
	return score
}

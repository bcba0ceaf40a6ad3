package memory

import (
	"context"
	"sort"

	"quiz-app/internal/domain"
)

// StaticQuizLoader serves quizzes from an in-memory map (config file, built-in quiz, tests).
type StaticQuizLoader struct {
	quizzes map[string]domain.Quiz
}

func NewStaticQuizLoader(quizzes map[string]domain.Quiz) *StaticQuizLoader {
	return &StaticQuizLoader{quizzes: quizzes}
}

// NewStaticQuizLoaderFromList indexes quizzes by ID. The built-in reference
// quiz is added under domain.DefaultQuizID unless the list already defines it.
func NewStaticQuizLoaderFromList(quizzes []domain.Quiz) *StaticQuizLoader {
	m := make(map[string]domain.Quiz, len(quizzes)+1)
	for _, q := range quizzes {
		m[q.ID] = q
	}
	if _, ok := m[domain.DefaultQuizID]; !ok {
		m[domain.DefaultQuizID] = domain.ReferenceQuiz()
	}
	return &StaticQuizLoader{quizzes: m}
}

func (l *StaticQuizLoader) LoadQuiz(_ context.Context, quizID string) (domain.Quiz, error) {
	if quiz, ok := l.quizzes[quizID]; ok {
		return quiz, nil
	}
	return domain.Quiz{}, domain.ErrQuizNotFound
}

// Quizzes lists every quiz the loader knows, ordered by ID.
func (l *StaticQuizLoader) Quizzes() []domain.Quiz {
	out := make([]domain.Quiz, 0, len(l.quizzes))
	for _, q := range l.quizzes {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

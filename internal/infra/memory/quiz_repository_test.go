package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"quiz-app/internal/domain"
)

func TestQuizRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		QuizLoader: NewStaticQuizLoader(map[string]domain.Quiz{
			"quiz-1": sampleQuiz(),
		}),
	}
	repo := NewQuizRepository(loader, time.Minute)

	if _, err := repo.GetQuiz(context.Background(), "quiz-1"); err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if loader.count() != 1 {
		t.Fatalf("expected loader once, got %d", loader.count())
	}

	if _, err := repo.GetQuiz(context.Background(), "quiz-1"); err != nil {
		t.Fatalf("get quiz 2: %v", err)
	}
	if loader.count() != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.count())
	}
}

func TestQuizRepositoryExpires(t *testing.T) {
	loader := &countingLoader{QuizLoader: NewStaticQuizLoader(map[string]domain.Quiz{"quiz-1": sampleQuiz()})}
	repo := NewQuizRepository(loader, time.Minute)
	now := time.Now()
	repo.clock = func() time.Time { return now }

	if _, err := repo.GetQuiz(context.Background(), "quiz-1"); err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := repo.GetQuiz(context.Background(), "quiz-1"); err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if loader.count() != 2 {
		t.Fatalf("expected reload after ttl, loader calls %d", loader.count())
	}
}

func TestQuizRepositoryRejectsInvalidQuiz(t *testing.T) {
	bad := domain.Quiz{ID: "bad", Questions: []domain.Question{{Text: "q", Options: []string{"only"}}}}
	repo := NewQuizRepository(NewStaticQuizLoader(map[string]domain.Quiz{"bad": bad}), time.Minute)

	if _, err := repo.GetQuiz(context.Background(), "bad"); !errors.Is(err, domain.ErrInvalidQuestion) {
		t.Fatalf("expected invalid question, got %v", err)
	}
	if _, err := repo.GetQuiz(context.Background(), "missing"); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStaticQuizLoaderFromListAddsReference(t *testing.T) {
	loader := NewStaticQuizLoaderFromList([]domain.Quiz{sampleQuiz()})
	quiz, err := loader.LoadQuiz(context.Background(), domain.DefaultQuizID)
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	if len(quiz.Questions) != 5 {
		t.Fatalf("expected reference quiz, got %d questions", len(quiz.Questions))
	}
	listed := loader.Quizzes()
	if len(listed) != 2 || listed[0].ID != domain.DefaultQuizID || listed[1].ID != "quiz-1" {
		t.Fatalf("expected default and quiz-1 in id order, got %+v", listed)
	}

	override := domain.Quiz{ID: domain.DefaultQuizID, Questions: sampleQuiz().Questions}
	loader = NewStaticQuizLoaderFromList([]domain.Quiz{override})
	quiz, _ = loader.LoadQuiz(context.Background(), domain.DefaultQuizID)
	if len(quiz.Questions) != 1 {
		t.Fatalf("configured default should win, got %d questions", len(quiz.Questions))
	}
}

type countingLoader struct {
	QuizLoader
	mu    sync.Mutex
	calls int
}

func (l *countingLoader) LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()
	return l.QuizLoader.LoadQuiz(ctx, quizID)
}

func (l *countingLoader) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func sampleQuiz() domain.Quiz {
	return domain.Quiz{
		ID:    "quiz-1",
		Title: "Arithmetic",
		Questions: []domain.Question{
			{Text: "What is 2 + 2?", Options: []string{"3", "4"}, CorrectAnswerIndex: 1},
		},
	}
}

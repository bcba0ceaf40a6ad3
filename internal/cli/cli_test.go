package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"quiz-app/internal/app"
	"quiz-app/internal/config"
	"quiz-app/internal/domain"
	"quiz-app/internal/infra/memory"
	redisinfra "quiz-app/internal/infra/redis"
)

func TestPlayCommandWithoutConfigFile(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs([]string{"play", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	cmd.SetIn(strings.NewReader("1 3\n2 2\n3 4\n4 2\n5 1\nsubmit\nquit\n"))
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("play: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "4 out of 5") || !strings.Contains(text, "Great job!") {
		t.Fatalf("expected 4/5 results in output:\n%s", text)
	}
}

func TestPlayCommandUsesConfiguredQuiz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
quiz:
  default: tiny
quizzes:
  - id: tiny
    title: Tiny Quiz
    questions:
      - {text: "Is this tiny?", options: ["yes", "no"], correctAnswerIndex: 0}
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs([]string{"play", "--config", path})
	cmd.SetIn(strings.NewReader("1 2\nsubmit\nquit\n"))
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("play: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Tiny Quiz") || !strings.Contains(text, "0 out of 1") || !strings.Contains(text, "Time to hit the books") {
		t.Fatalf("unexpected output:\n%s", text)
	}
}

func TestPlayCommandUnknownQuiz(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"play", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "--quiz", "nope"})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown quiz")
	}
}

func TestSeedQuizzesAddsReference(t *testing.T) {
	cfg := config.Config{Quizzes: []domain.Quiz{{ID: "other"}}}
	quizzes := seedQuizzes(cfg)
	if len(quizzes) != 2 || quizzes[0].ID != domain.DefaultQuizID || quizzes[1].ID != "other" {
		t.Fatalf("expected reference quiz added in id order, got %+v", quizzes)
	}

	cfg = config.Config{Quizzes: []domain.Quiz{{ID: domain.DefaultQuizID}}}
	if got := seedQuizzes(cfg); len(got) != 1 {
		t.Fatalf("configured default should not be duplicated, got %d", len(got))
	}
}

func TestInvalidateCachedQuizzes(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	for _, key := range []string{"quiz:default:content", "quiz:other:content", "quiz:kept:content"} {
		if err := mr.Set(key, "{}"); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}

	quizzes := seedQuizzes(config.Config{Quizzes: []domain.Quiz{{ID: "other"}}})
	if err := invalidateCachedQuizzes(context.Background(), client, quizzes); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if mr.Exists("quiz:default:content") || mr.Exists("quiz:other:content") {
		t.Fatalf("seeded quizzes still cached: %v", mr.Keys())
	}
	if !mr.Exists("quiz:kept:content") {
		t.Fatalf("unrelated quiz was invalidated")
	}
}

func TestKeepAliveRefreshesSessionMarker(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	service := app.NewQuizService(
		redisinfra.NewSessionStore(client, time.Minute),
		memory.NewQuizRepository(memory.NewStaticQuizLoaderFromList(nil), time.Minute),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, err := service.Start(ctx, domain.DefaultQuizID, "c1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	mr.FastForward(50 * time.Second)

	go keepAlive(ctx, service, "c1", 10*time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for mr.TTL("quiz:session:c1") != time.Minute {
		if time.Now().After(deadline) {
			t.Fatalf("marker not refreshed, ttl %v", mr.TTL("quiz:session:c1"))
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestResolveQuizID(t *testing.T) {
	var cfg config.Config
	if got := resolveQuizID("", cfg); got != domain.DefaultQuizID {
		t.Fatalf("expected built-in default, got %q", got)
	}
	cfg.Quiz.Default = "capitals"
	if got := resolveQuizID("", cfg); got != "capitals" {
		t.Fatalf("expected config default, got %q", got)
	}
	if got := resolveQuizID("flag", cfg); got != "flag" {
		t.Fatalf("expected flag to win, got %q", got)
	}
}

package cli

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"quiz-app/internal/app"
	"quiz-app/internal/config"
	"quiz-app/internal/infra/memory"
	pgloader "quiz-app/internal/infra/postgres"
	redisinfra "quiz-app/internal/infra/redis"
)

// backends holds the optional external clients named in config.
type backends struct {
	redis *redis.Client
	pool  *pgxpool.Pool
}

func openBackends(ctx context.Context, cfg config.Config) (*backends, error) {
	b := &backends{}
	if cfg.Redis.Addr != "" {
		b.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.pool = pool
	}
	return b, nil
}

func (b *backends) Close() {
	if b.pool != nil {
		b.pool.Close()
	}
	if b.redis != nil {
		_ = b.redis.Close()
	}
}

// quizRepository picks the loader (Postgres or config) and the cache (Redis or memory).
func (b *backends) quizRepository(cfg config.Config) app.QuizRepository {
	var loader memory.QuizLoader = memory.NewStaticQuizLoaderFromList(cfg.Quizzes)
	if b.pool != nil {
		loader = pgloader.NewQuizLoader(b.pool)
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	if b.redis != nil {
		return redisinfra.NewQuizRepository(b.redis, loader, quizTTL)
	}
	return memory.NewQuizRepository(loader, quizTTL)
}

func (b *backends) sessionStore(cfg config.Config) app.SessionRepository {
	if b.redis != nil {
		return redisinfra.NewSessionStore(b.redis, config.TTLDuration(cfg.Redis.TTL, 10*time.Minute))
	}
	return memory.NewSessionStore()
}

func resolveQuizID(flag string, cfg config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.DefaultQuizID()
}

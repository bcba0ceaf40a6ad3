package cli

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"quiz-app/internal/config"
	"quiz-app/internal/domain"
	"quiz-app/internal/infra/memory"
	pgloader "quiz-app/internal/infra/postgres"
	redisinfra "quiz-app/internal/infra/redis"
)

// NewSeedCmd writes the configured quizzes, plus the built-in one, to Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate and upsert quiz content into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	db, err := openBunDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrateDB(ctx, db); err != nil {
		return err
	}

	quizzes := seedQuizzes(cfg)
	if err := pgloader.NewSeeder(db).Seed(ctx, quizzes); err != nil {
		return err
	}
	log.Printf("seeded %d quizzes", len(quizzes))

	if cfg.Redis.Addr == "" {
		return nil
	}
	b, err := openBackends(ctx, config.Config{Redis: cfg.Redis})
	if err != nil {
		return err
	}
	defer b.Close()
	return invalidateCachedQuizzes(ctx, b.redis, quizzes)
}

// invalidateCachedQuizzes drops cached content for freshly seeded quizzes so
// running servers pick up the new rows on their next read.
func invalidateCachedQuizzes(ctx context.Context, client *redis.Client, quizzes []domain.Quiz) error {
	ids := make([]string, 0, len(quizzes))
	for _, q := range quizzes {
		ids = append(ids, q.ID)
	}
	if err := redisinfra.NewQuizRepository(client, nil, 0).Invalidate(ctx, ids...); err != nil {
		return err
	}
	log.Printf("invalidated cached content for %d quizzes", len(ids))
	return nil
}

// seedQuizzes is the configured quizzes plus the built-in one, ordered by ID.
func seedQuizzes(cfg config.Config) []domain.Quiz {
	return memory.NewStaticQuizLoaderFromList(cfg.Quizzes).Quizzes()
}

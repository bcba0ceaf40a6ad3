package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"quiz-app/internal/app"
	"quiz-app/internal/config"
	"quiz-app/internal/transport/terminal"
)

// NewPlayCmd runs a quiz in the terminal.
func NewPlayCmd(configPath, quiz *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Take a quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runPlay(ctx, cmd, *configPath, *quiz)
		},
	}
}

func runPlay(ctx context.Context, cmd *cobra.Command, configPath, quizFlag string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	b, err := openBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	service := app.NewQuizService(b.sessionStore(cfg), b.quizRepository(cfg))
	clientID := uuid.NewString()
	ctrl, err := service.Start(ctx, resolveQuizID(quizFlag, cfg), clientID)
	if err != nil {
		return err
	}
	defer service.Finish(ctx, clientID)

	if b.redis != nil {
		aliveCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go keepAlive(aliveCtx, service, clientID, config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)/2)
	}

	return terminal.Run(ctx, ctrl, cmd.InOrStdin(), cmd.OutOrStdout())
}

// keepAlive refreshes the session marker until ctx is done. A terminal player
// can sit on one question longer than the marker ttl. A non-positive interval
// means the marker never expires, so there is nothing to refresh.
func keepAlive(ctx context.Context, service *app.QuizService, clientID string, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			service.Touch(ctx, clientID)
		}
	}
}

package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	port       string
	configPath string
	quizID     string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envPort := os.Getenv("PORT")
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}
	envQuiz := os.Getenv("QUIZ_ID")

	cmd := &cobra.Command{
		Use:          "quiz-app",
		Short:        "Single-player multiple-choice quiz",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&port, "port", envPort, "port to listen on (overrides config)")
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&quizID, "quiz", envQuiz, "quiz to open (defaults to quiz.default from config)")
	cmd.AddCommand(NewPlayCmd(&configPath, &quizID))
	cmd.AddCommand(NewStartCmd(&configPath, &port, &quizID))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	cmd.AddCommand(NewSeedCmd(&configPath))
	return cmd
}

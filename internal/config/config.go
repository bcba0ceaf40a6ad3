package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"quiz-app/internal/domain"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Quiz struct {
		TTL     string `yaml:"ttl"`
		Default string `yaml:"default"`
	} `yaml:"quiz"`
	// Quizzes are served when no Postgres URL is configured, and are what `seed` writes.
	Quizzes []domain.Quiz `yaml:"quizzes"`
}

// Load reads YAML config from path and validates any inline quizzes.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the zero Config.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

// DefaultQuizID is the quiz to open when none is requested.
func (c Config) DefaultQuizID() string {
	if c.Quiz.Default != "" {
		return c.Quiz.Default
	}
	return domain.DefaultQuizID
}

func (c Config) validate() error {
	seen := make(map[string]bool, len(c.Quizzes))
	for i, q := range c.Quizzes {
		if q.ID == "" {
			return fmt.Errorf("%w: quizzes[%d] has no id", domain.ErrInvalidQuiz, i)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: duplicate quiz id %q", domain.ErrInvalidQuiz, q.ID)
		}
		seen[q.ID] = true
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

package cli

import (
	"strings"

	"go.uber.org/zap"

	"trivia/internal/config"
	"trivia/internal/opentdb"
	"trivia/internal/quiz"
)

// loadConfig loads an explicit config path or the nearest .trivia.yml,
// falling back to defaults when none exists.
func loadConfig(path string) (config.Config, string, error) {
	return config.Resolve(strings.TrimSpace(path), "")
}

// newSource is a test seam for the question source.
var newSource = func(cfg config.Config) quiz.Source {
	return opentdb.New(opentdb.Options{
		Endpoint:   cfg.Source.Endpoint,
		Amount:     cfg.Source.Amount,
		Category:   cfg.Source.Category,
		Difficulty: cfg.Source.Difficulty,
		Type:       cfg.Source.Type,
		Timeout:    cfg.Timeout(),
	})
}

// newController builds the quiz controller for cfg.
func newController(cfg config.Config, logger *zap.Logger) (*quiz.Controller, error) {
	return quiz.NewController(quiz.Options{
		Source:          newSource(cfg),
		Logger:          logger,
		LoadingMessage:  cfg.Loading.Message,
		LoadingInterval: cfg.LoadingInterval(),
	})
}

// logConfig raises the level to debug for --verbose.
func logConfig(cfg config.Config, verbose bool) config.LogConfig {
	logCfg := cfg.Log
	if verbose {
		logCfg.Level = "debug"
	}
	return logCfg
}

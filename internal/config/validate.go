package config

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap/zapcore"

	"trivia/internal/opentdb"
)

// MaxAmount is the largest batch the question endpoint serves.
const MaxAmount = 50

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	validateSource(cfg.Source, collector)

	if cfg.Loading.IntervalMS < 0 {
		collector.add("loading.interval_ms", "must be > 0")
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		collector.add("ui.mode", fmt.Sprintf("unsupported mode %q (want auto, live or plain)", cfg.UI.Mode))
	}

	if cfg.Web.Addr == "" {
		collector.add("web.addr", "is required")
	}
	for i, origin := range cfg.Web.CORSOrigins {
		if origin == "" {
			collector.add(fmt.Sprintf("web.cors_origins[%d]", i), "must not be empty")
		}
	}

	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		collector.add("log.level", fmt.Sprintf("unknown level %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		collector.add("log.format", fmt.Sprintf("unsupported format %q (want console or json)", cfg.Log.Format))
	}

	return collector.result()
}

func validateSource(source SourceConfig, collector *issueCollector) {
	endpoint, err := url.Parse(source.Endpoint)
	if err != nil || endpoint.Host == "" || (endpoint.Scheme != "http" && endpoint.Scheme != "https") {
		collector.add("source.endpoint", fmt.Sprintf("must be an http(s) URL, got %q", source.Endpoint))
	}
	if source.Amount < 1 || source.Amount > MaxAmount {
		collector.add("source.amount", fmt.Sprintf("must be between 1 and %d", MaxAmount))
	}
	if source.Category < 0 {
		collector.add("source.category", "must be >= 0")
	}
	switch source.Difficulty {
	case "", "easy", "medium", "hard":
	default:
		collector.add("source.difficulty", fmt.Sprintf("unsupported difficulty %q", source.Difficulty))
	}
	switch source.Type {
	case "", opentdb.TypeMultiple, opentdb.TypeBoolean:
	default:
		collector.add("source.type", fmt.Sprintf("unsupported type %q", source.Type))
	}
	if source.TimeoutSeconds < 0 {
		collector.add("source.timeout_seconds", "must be > 0")
	}
}

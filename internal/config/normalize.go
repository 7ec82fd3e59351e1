package config

import (
	"strings"
	"time"

	"trivia/internal/loading"
	"trivia/internal/opentdb"
)

// Defaults applied by Normalize.
const (
	DefaultTimeoutSeconds = 10
	DefaultUIMode         = "auto"
	DefaultWebAddr        = "127.0.0.1:8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
)

// Default returns the normalized zero config.
func Default() Config {
	var cfg Config
	Normalize(&cfg)
	return cfg
}

// Normalize trims values and fills in defaults for unset keys.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	cfg.Source.Endpoint = strings.TrimSpace(cfg.Source.Endpoint)
	if cfg.Source.Endpoint == "" {
		cfg.Source.Endpoint = opentdb.DefaultEndpoint
	}
	if cfg.Source.Amount == 0 {
		cfg.Source.Amount = opentdb.DefaultAmount
	}
	cfg.Source.Difficulty = strings.ToLower(strings.TrimSpace(cfg.Source.Difficulty))
	cfg.Source.Type = strings.ToLower(strings.TrimSpace(cfg.Source.Type))
	if cfg.Source.TimeoutSeconds == 0 {
		cfg.Source.TimeoutSeconds = DefaultTimeoutSeconds
	}

	if strings.TrimSpace(cfg.Loading.Message) == "" {
		cfg.Loading.Message = loading.DefaultMessage
	}
	if cfg.Loading.IntervalMS == 0 {
		cfg.Loading.IntervalMS = int(loading.DefaultInterval / time.Millisecond)
	}

	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}

	cfg.Web.Addr = strings.TrimSpace(cfg.Web.Addr)
	if cfg.Web.Addr == "" {
		cfg.Web.Addr = DefaultWebAddr
	}
	for i, origin := range cfg.Web.CORSOrigins {
		cfg.Web.CORSOrigins[i] = strings.TrimSpace(origin)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
}

// Timeout returns the source request timeout.
func (cfg Config) Timeout() time.Duration {
	return time.Duration(cfg.Source.TimeoutSeconds) * time.Second
}

// LoadingInterval returns the indicator tick interval.
func (cfg Config) LoadingInterval() time.Duration {
	return time.Duration(cfg.Loading.IntervalMS) * time.Millisecond
}

package config

// Config is the root of a .trivia.yml file.
type Config struct {
	Version int           `yaml:"version"`
	Source  SourceConfig  `yaml:"source"`
	Loading LoadingConfig `yaml:"loading"`
	UI      UIConfig      `yaml:"ui"`
	Web     WebConfig     `yaml:"web"`
	Log     LogConfig     `yaml:"log"`
}

// SourceConfig selects the question endpoint and its filters.
type SourceConfig struct {
	Endpoint       string `yaml:"endpoint"`
	Amount         int    `yaml:"amount"`
	Category       int    `yaml:"category"`
	Difficulty     string `yaml:"difficulty"`
	Type           string `yaml:"type"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LoadingConfig controls the loading indicator.
type LoadingConfig struct {
	Message    string `yaml:"message"`
	IntervalMS int    `yaml:"interval_ms"`
}

// UIConfig controls the terminal host.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// WebConfig controls the web host.
type WebConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// LogConfig controls the diagnostics logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}

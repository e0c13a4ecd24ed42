package config

import "time"

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int             `yaml:"port"`
	Env            string          `yaml:"env"` // "development" | "production"
	AllowedOrigins []string        `yaml:"allowed_origins"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
	Arxiv          ArxivConfig     `yaml:"arxiv"`
	AI             AIConfig        `yaml:"ai"`
}

// IsDev reports whether the service runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// RateLimitConfig controls the per-IP request rate limit.
type RateLimitConfig struct {
	Max           int `yaml:"max"`
	WindowSeconds int `yaml:"window_seconds"`
}

func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

// ArxivConfig configures abstract resolution against the arXiv Atom API.
type ArxivConfig struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (c ArxivConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AIConfig configures the text-generation providers and per-operation model
// assignments.
type AIConfig struct {
	Providers             []AIProvider       `yaml:"providers"`
	SummaryModel          *AIModelAssignment `yaml:"summary_model"`
	FlashcardsModel       *AIModelAssignment `yaml:"flashcards_model"`
	RequestTimeoutSeconds int                `yaml:"request_timeout_seconds"`
	MaxOutputTokens       int                `yaml:"max_output_tokens"`
	MaxInputRunes         int                `yaml:"max_input_runes"`
	MaxCards              int                `yaml:"max_cards"`
}

func (c AIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// AIProvider describes one configured text-generation backend.
type AIProvider struct {
	ID           string `yaml:"id"`
	Type         string `yaml:"type"` // openai | anthropic | openrouter | openai-compatible
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint"`
	DefaultModel string `yaml:"default_model"`
	Enabled      bool   `yaml:"enabled"`
}

// AIModelAssignment pins an operation to a provider and optionally overrides
// the provider's default model.
type AIModelAssignment struct {
	ProviderID string `yaml:"provider_id"`
	Model      string `yaml:"model"`
}

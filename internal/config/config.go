package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort            = 2333
	defaultEnv             = "development"
	defaultRateLimitMax    = 50
	defaultRateLimitWindow = 1
	defaultArxivEndpoint   = "https://export.arxiv.org/api/query"
	defaultArxivTimeout    = 15
	defaultAITimeout       = 60
	defaultMaxOutputTokens = 1024
	defaultMaxInputRunes   = 6000
	defaultMaxCards        = 5
	maxCardsCeiling        = 20
)

// Load reads and validates the YAML config file at path. Missing file is an
// error; missing keys fall back to defaults, unknown keys are rejected.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}
	applyDefaults(&cfg)

	if err := validate(&cfg, path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		RateLimit: RateLimitConfig{
			Max:           defaultRateLimitMax,
			WindowSeconds: defaultRateLimitWindow,
		},
		Arxiv: ArxivConfig{
			Endpoint:       defaultArxivEndpoint,
			TimeoutSeconds: defaultArxivTimeout,
		},
		AI: AIConfig{
			RequestTimeoutSeconds: defaultAITimeout,
			MaxOutputTokens:       defaultMaxOutputTokens,
			MaxInputRunes:         defaultMaxInputRunes,
			MaxCards:              defaultMaxCards,
		},
	}
}

// applyDefaults restores zero-valued fields that yaml explicitly nulled out.
func applyDefaults(cfg *AppConfig) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = defaultEnv
	}
	if strings.TrimSpace(cfg.Arxiv.Endpoint) == "" {
		cfg.Arxiv.Endpoint = defaultArxivEndpoint
	}
	if cfg.Arxiv.TimeoutSeconds <= 0 {
		cfg.Arxiv.TimeoutSeconds = defaultArxivTimeout
	}
	if cfg.RateLimit.Max <= 0 {
		cfg.RateLimit.Max = defaultRateLimitMax
	}
	if cfg.RateLimit.WindowSeconds <= 0 {
		cfg.RateLimit.WindowSeconds = defaultRateLimitWindow
	}
	if cfg.AI.RequestTimeoutSeconds <= 0 {
		cfg.AI.RequestTimeoutSeconds = defaultAITimeout
	}
	if cfg.AI.MaxOutputTokens <= 0 {
		cfg.AI.MaxOutputTokens = defaultMaxOutputTokens
	}
	if cfg.AI.MaxInputRunes <= 0 {
		cfg.AI.MaxInputRunes = defaultMaxInputRunes
	}
	if cfg.AI.MaxCards <= 0 {
		cfg.AI.MaxCards = defaultMaxCards
	}
}

func validate(cfg *AppConfig, path string) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.AI.MaxCards > maxCardsCeiling {
		return fmt.Errorf("invalid ai.max_cards %d in %q, expected <= %d", cfg.AI.MaxCards, path, maxCardsCeiling)
	}

	seen := make(map[string]struct{}, len(cfg.AI.Providers))
	for i := range cfg.AI.Providers {
		p := &cfg.AI.Providers[i]
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return fmt.Errorf("ai.providers[%d] in %q has an empty id", i, path)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate ai provider id %q in %q", p.ID, path)
		}
		seen[p.ID] = struct{}{}
		if p.Enabled && strings.TrimSpace(p.APIKey) == "" {
			return fmt.Errorf("ai provider %q in %q is enabled but has no api_key", p.ID, path)
		}
	}

	for _, assignment := range []*AIModelAssignment{cfg.AI.SummaryModel, cfg.AI.FlashcardsModel} {
		if assignment == nil || strings.TrimSpace(assignment.ProviderID) == "" {
			continue
		}
		if _, ok := seen[strings.TrimSpace(assignment.ProviderID)]; !ok {
			return fmt.Errorf("model assignment references unknown provider %q in %q", assignment.ProviderID, path)
		}
	}

	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "port: 8080\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, defaultArxivEndpoint, cfg.Arxiv.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.Arxiv.Timeout())
	assert.Equal(t, defaultMaxCards, cfg.AI.MaxCards)
	assert.Equal(t, 60*time.Second, cfg.AI.RequestTimeout())
	assert.Equal(t, defaultRateLimitMax, cfg.RateLimit.Max)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
port: 9000
env: production
allowed_origins:
  - "*.example.com"
rate_limit:
  max: 10
  window_seconds: 2
arxiv:
  endpoint: "http://localhost:9999/api/query"
  timeout_seconds: 3
ai:
  request_timeout_seconds: 20
  max_cards: 8
  providers:
    - id: main
      type: openai
      api_key: sk-test
      default_model: gpt-4o-mini
      enabled: true
    - id: fallback
      type: anthropic
      api_key: sk-ant
      enabled: false
  summary_model:
    provider_id: main
    model: gpt-4o
`))
	require.NoError(t, err)

	assert.False(t, cfg.IsDev())
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, []string{"*.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.RateLimit.Window())
	assert.Equal(t, "http://localhost:9999/api/query", cfg.Arxiv.Endpoint)
	require.Len(t, cfg.AI.Providers, 2)
	assert.Equal(t, "main", cfg.AI.Providers[0].ID)
	require.NotNil(t, cfg.AI.SummaryModel)
	assert.Equal(t, "gpt-4o", cfg.AI.SummaryModel.Model)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid port", "port: 70000\n"},
		{"unknown key", "port: 8080\nnope: true\n"},
		{"enabled provider without key", "ai:\n  providers:\n    - id: a\n      type: openai\n      enabled: true\n"},
		{"duplicate provider id", "ai:\n  providers:\n    - id: a\n      api_key: k\n    - id: a\n      api_key: k\n"},
		{"assignment to unknown provider", "ai:\n  summary_model:\n    provider_id: ghost\n"},
		{"max_cards over ceiling", "ai:\n  max_cards: 100\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

// Package ai wraps the configured text-generation providers behind a single
// Generator capability. Callers hand it a system prompt and a user prompt and
// get natural-language text back, or an error.
package ai

import (
	"context"
	"errors"
	"fmt"

	appcfg "github.com/paperdeck/core/internal/config"
)

// Operation names a configured model assignment.
type Operation string

const (
	OpSummary    Operation = "summary"
	OpFlashcards Operation = "flashcards"
)

// ErrGeneration marks backend failures: transport errors, timeouts, and empty
// or undecodable model output.
var ErrGeneration = errors.New("text generation failed")

// Generator produces text from a prompt pair. The ai.Client is the production
// implementation; tests substitute stubs.
type Generator interface {
	GenerateText(ctx context.Context, op Operation, systemPrompt, prompt string) (string, error)
}

// Client dispatches generation requests to the provider assigned to each
// operation.
type Client struct {
	cfg appcfg.AIConfig
}

func NewClient(cfg appcfg.AIConfig) *Client {
	return &Client{cfg: cfg}
}

// GenerateText performs a single generation attempt against the provider
// assigned to op. The call is bounded by the configured request timeout on top
// of whatever deadline ctx already carries.
func (c *Client) GenerateText(ctx context.Context, op Operation, systemPrompt, prompt string) (string, error) {
	provider := selectProvider(c.cfg, c.assignment(op))
	if provider == nil {
		return "", fmt.Errorf("%w: no enabled provider configured", ErrGeneration)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout())
	defer cancel()

	raw, err := generate(ctx, provider, systemPrompt, prompt, c.cfg.MaxOutputTokens)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return raw, nil
}

func (c *Client) assignment(op Operation) *appcfg.AIModelAssignment {
	switch op {
	case OpSummary:
		return c.cfg.SummaryModel
	case OpFlashcards:
		return c.cfg.FlashcardsModel
	default:
		return nil
	}
}

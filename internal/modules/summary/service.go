// Package summary produces reading-level-adjusted summaries of paper
// abstracts through the configured text-generation backend.
package summary

import (
	"context"
	"fmt"
	"strings"

	appcfg "github.com/paperdeck/core/internal/config"
	"github.com/paperdeck/core/internal/modules/ai"
	"github.com/paperdeck/core/internal/modules/normalize"
)

// Service drives summary generation.
type Service struct {
	gen ai.Generator
	cfg appcfg.AIConfig
}

func NewService(gen ai.Generator, cfg appcfg.AIConfig) *Service {
	return &Service{gen: gen, cfg: cfg}
}

// Summarize makes a single backend attempt to summarize paper at the given
// level. The summary derives only from paper.SourceText; backend failure,
// timeout, and empty or undecodable output surface as ai.ErrGeneration.
func (s *Service) Summarize(ctx context.Context, paper *normalize.PaperInput, level ReadingLevel) (*Summary, error) {
	text := ai.TruncateRunes(paper.SourceText, s.cfg.MaxInputRunes)
	systemPrompt, prompt := buildSummaryPrompt(level, text)

	raw, err := s.gen.GenerateText(ctx, ai.OpSummary, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	summaryText, err := extractSummary(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrGeneration, err)
	}

	return &Summary{Level: level, Text: summaryText}, nil
}

// extractSummary pulls the summary string out of the model's JSON output.
// Plain-text responses without any JSON are accepted as-is: the contract asks
// for JSON, but a clean prose answer is still a usable summary.
func extractSummary(raw string) (string, error) {
	var output struct {
		Summary string `json:"summary"`
	}
	if err := ai.UnmarshalModelJSON(raw, &output); err != nil {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "{") || hasBracePair(trimmed) {
			return "", fmt.Errorf("summary missing in model response")
		}
		return trimmed, nil
	}
	if strings.TrimSpace(output.Summary) == "" {
		return "", fmt.Errorf("summary is empty in model response")
	}
	return strings.TrimSpace(output.Summary), nil
}

// hasBracePair reports whether s holds a "{...}" span, i.e. the model
// attempted an embedded JSON object that failed to decode. Prose that merely
// mentions a lone brace stays eligible for the fallback.
func hasBracePair(s string) bool {
	start := strings.Index(s, "{")
	return start >= 0 && strings.LastIndex(s, "}") > start
}

// Package flashcards derives study question/answer pairs from a paper
// abstract through the configured text-generation backend.
package flashcards

import (
	"context"

	appcfg "github.com/paperdeck/core/internal/config"
	"github.com/paperdeck/core/internal/modules/ai"
	"github.com/paperdeck/core/internal/modules/normalize"
)

// Service drives flashcard extraction.
type Service struct {
	gen ai.Generator
	cfg appcfg.AIConfig
}

func NewService(gen ai.Generator, cfg appcfg.AIConfig) *Service {
	return &Service{gen: gen, cfg: cfg}
}

// Extract asks the backend for numCards question/answer pairs covering the
// paper's key concepts. numCards <= 0 selects the configured default; the
// configured value also caps explicit requests. Backend failure surfaces as
// ai.ErrGeneration, an undecomposable response as ErrParse. The returned
// sequence is non-empty on success, ordered as the backend emitted it.
func (s *Service) Extract(ctx context.Context, paper *normalize.PaperInput, numCards int) ([]Flashcard, error) {
	if numCards <= 0 || numCards > s.cfg.MaxCards {
		numCards = s.cfg.MaxCards
	}

	text := ai.TruncateRunes(paper.SourceText, s.cfg.MaxInputRunes)
	systemPrompt, prompt := buildFlashcardsPrompt(numCards, text)

	raw, err := s.gen.GenerateText(ctx, ai.OpFlashcards, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	return parseCards(raw, numCards)
}

// Package normalize turns user input (pasted abstract text or an arXiv
// reference) into a PaperInput ready for summarization and flashcard
// extraction.
package normalize

import (
	"context"
	"errors"
	"net/http"
	"strings"

	appcfg "github.com/paperdeck/core/internal/config"
)

var (
	// ErrEmptyInput is returned when no usable text remains after trimming.
	ErrEmptyInput = errors.New("input is empty")
	// ErrFetch marks a failed arXiv resolution: transport error, bad status,
	// unknown identifier, or an entry without an abstract.
	ErrFetch = errors.New("arxiv fetch failed")
)

// Service resolves raw submissions into PaperInputs.
type Service struct {
	cfg    appcfg.ArxivConfig
	client *http.Client
}

// NewService builds a normalizer. A nil client gets a default one bound to the
// configured timeout; tests inject their own.
func NewService(cfg appcfg.ArxivConfig, client *http.Client) *Service {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout()}
	}
	return &Service{cfg: cfg, client: client}
}

// Normalize classifies input as an arXiv reference or raw abstract text. The
// only side effect is the network fetch for arXiv resolution.
func (s *Service) Normalize(ctx context.Context, input string) (*PaperInput, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	if id, ok := detectArxivID(trimmed); ok {
		return s.fetchAbstract(ctx, id)
	}

	return &PaperInput{
		SourceText: trimmed,
		SourceKind: KindRawText,
	}, nil
}

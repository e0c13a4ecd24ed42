package normalize

import (
	"context"
	"fmt"
	neturl "net/url"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
	"mvdan.cc/xurls/v2"
)

var (
	// New-style (2007+) identifiers: 2301.12345 or 2301.12345v2.
	newStyleIDPattern = regexp.MustCompile(`^\d{4}\.\d{4,5}(v\d+)?$`)
	// Old-style identifiers: hep-th/9901001, math.GT/0309136.
	oldStyleIDPattern = regexp.MustCompile(`^[a-z-]+(\.[A-Z]{2})?/\d{7}(v\d+)?$`)

	urlFinder = xurls.Relaxed()
)

// detectArxivID reports whether the whole trimmed input is an arXiv reference
// and extracts the bare identifier. Recognized forms: abs/pdf URLs, an
// "arXiv:" prefix, and bare new-/old-style identifiers. Abstract text that
// merely mentions arXiv somewhere is left alone.
func detectArxivID(input string) (string, bool) {
	if rest, ok := cutPrefixFold(input, "arxiv:"); ok {
		id := strings.TrimSpace(rest)
		if isArxivID(id) {
			return id, true
		}
		return "", false
	}

	if match := urlFinder.FindString(input); match != "" && match == input {
		return arxivIDFromURL(match)
	}

	if isArxivID(input) {
		return input, true
	}
	return "", false
}

func isArxivID(s string) bool {
	return newStyleIDPattern.MatchString(s) || oldStyleIDPattern.MatchString(s)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

func arxivIDFromURL(raw string) (string, bool) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := neturl.Parse(raw)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	if host != "arxiv.org" && !strings.HasSuffix(host, ".arxiv.org") {
		return "", false
	}

	path := strings.Trim(u.Path, "/")
	for _, prefix := range []string{"abs/", "pdf/"} {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(path, prefix), ".pdf")
		if isArxivID(id) {
			return id, true
		}
	}
	return "", false
}

// fetchAbstract issues one read against the arXiv Atom API and maps the first
// entry to a PaperInput.
func (s *Service) fetchAbstract(ctx context.Context, id string) (*PaperInput, error) {
	query := neturl.Values{}
	query.Set("id_list", id)
	query.Set("max_results", "1")
	requestURL := s.cfg.Endpoint + "?" + query.Encode()

	parser := gofeed.NewParser()
	parser.Client = s.client

	feed, err := parser.ParseURLWithContext(requestURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if len(feed.Items) == 0 {
		return nil, fmt.Errorf("%w: no entry for id %q", ErrFetch, id)
	}

	entry := feed.Items[0]
	abstract := collapseWhitespace(entry.Description)
	if abstract == "" {
		return nil, fmt.Errorf("%w: entry for id %q has no abstract", ErrFetch, id)
	}

	return &PaperInput{
		SourceText: abstract,
		SourceKind: KindArxivLink,
		Title:      collapseWhitespace(entry.Title),
		ArxivID:    id,
	}, nil
}

// collapseWhitespace folds the hard-wrapped lines of arXiv Atom fields into
// single-space-separated text.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package flashcards

import (
	"errors"
	"regexp"
	"strings"

	"github.com/paperdeck/core/internal/modules/ai"
)

// ErrParse is returned when the backend response cannot be decomposed into
// question/answer pairs.
var ErrParse = errors.New("flashcard response is malformed")

const (
	maxQuestionRunes = 150
	maxAnswerRunes   = 300
)

// parseCards decomposes raw model output into flashcards, preserving the
// order the backend emitted them. The JSON contract is tried first; labelled
// "Question:"/"Answer:" text is accepted as a fallback since smaller models
// routinely ignore the JSON instruction.
func parseCards(raw string, limit int) ([]Flashcard, error) {
	cards := parseJSONCards(raw)
	if len(cards) == 0 {
		cards = parseLabelledCards(raw)
	}

	cards = sanitizeCards(cards, limit)
	if len(cards) == 0 {
		return nil, ErrParse
	}
	return cards, nil
}

func parseJSONCards(raw string) []Flashcard {
	var payload struct {
		Cards []struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		} `json:"cards"`
	}
	if err := ai.UnmarshalModelJSON(raw, &payload); err != nil {
		return nil
	}

	cards := make([]Flashcard, 0, len(payload.Cards))
	for _, card := range payload.Cards {
		cards = append(cards, Flashcard{Question: card.Question, Answer: card.Answer})
	}
	return cards
}

// Marker matching is case-insensitive via regexp so offsets always refer to
// the searched string itself; a ToLower copy can shift byte offsets for runes
// whose lowercase form has a different encoded length.
var (
	questionMarker = regexp.MustCompile(`(?i)question\s*:`)
	answerMarker   = regexp.MustCompile(`(?i)answer\s*:`)
)

// parseLabelledCards splits loosely structured output on "Question:" markers
// and then on the first "Answer:" within each block.
func parseLabelledCards(raw string) []Flashcard {
	blocks := splitOnMarker(raw, questionMarker)
	if len(blocks) == 0 {
		return nil
	}

	cards := make([]Flashcard, 0, len(blocks))
	for _, block := range blocks {
		question, answer, found := cutOnMarker(block, answerMarker)
		if !found {
			continue
		}
		cards = append(cards, Flashcard{
			Question: cleanText(question),
			Answer:   cleanText(answer),
		})
	}
	return cards
}

// splitOnMarker returns the chunks following each occurrence of marker,
// discarding any preamble before the first one.
func splitOnMarker(s string, marker *regexp.Regexp) []string {
	locs := marker.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return nil
	}

	chunks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(s)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunks = append(chunks, s[loc[1]:end])
	}
	return chunks
}

func cutOnMarker(s string, marker *regexp.Regexp) (before, after string, found bool) {
	loc := marker.FindStringIndex(s)
	if loc == nil {
		return s, "", false
	}
	return s[:loc[0]], s[loc[1]:], true
}

// cleanText collapses whitespace and strips markdown leftovers the original
// labelled format tends to carry (numbering, emphasis markers).
func cleanText(s string) string {
	lines := strings.Split(s, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if l == "" || strings.HasPrefix(l, "```") || strings.HasPrefix(l, "---") {
			continue
		}
		cleaned = append(cleaned, l)
	}
	out := strings.Join(cleaned, " ")
	out = strings.ReplaceAll(out, "**", "")
	out = strings.Trim(out, "*># ")
	return strings.TrimSpace(out)
}

// sanitizeCards drops blank pairs, deduplicates case-insensitively, caps
// lengths, and applies the card limit, all without reordering.
func sanitizeCards(cards []Flashcard, limit int) []Flashcard {
	out := make([]Flashcard, 0, len(cards))
	seen := make(map[string]struct{}, len(cards))
	for _, card := range cards {
		question := strings.TrimSpace(card.Question)
		answer := strings.TrimSpace(card.Answer)
		if question == "" || answer == "" {
			continue
		}

		key := strings.ToLower(question) + "\x00" + strings.ToLower(answer)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, Flashcard{
			Question: ai.TruncateRunes(question, maxQuestionRunes),
			Answer:   ai.TruncateRunes(answer, maxAnswerRunes),
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

package summary

import (
	"fmt"
	"strings"
)

// ReadingLevel calibrates vocabulary and assumed background of a summary.
type ReadingLevel string

const (
	LevelBeginner     ReadingLevel = "beginner"
	LevelIntermediate ReadingLevel = "intermediate"
	LevelExpert       ReadingLevel = "expert"
)

// ParseLevel maps user input to a ReadingLevel, case-insensitively.
func ParseLevel(raw string) (ReadingLevel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(LevelBeginner):
		return LevelBeginner, nil
	case string(LevelIntermediate), "":
		return LevelIntermediate, nil
	case string(LevelExpert):
		return LevelExpert, nil
	default:
		return "", fmt.Errorf("unknown reading level %q", raw)
	}
}

// Summary is the level-calibrated result for one request.
type Summary struct {
	Level ReadingLevel `json:"level"`
	Text  string       `json:"text"`
}

type summarizeDTO struct {
	Input string `json:"input" binding:"required"`
	Level string `json:"level"`
}

type summaryResponse struct {
	Level   ReadingLevel `json:"level"`
	Text    string       `json:"text"`
	HTML    string       `json:"html"`
	Title   string       `json:"title,omitempty"`
	ArxivID string       `json:"arxivId,omitempty"`
}

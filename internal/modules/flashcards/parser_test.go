package flashcards

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCardsJSON(t *testing.T) {
	raw := `{"cards":[
		{"question":"What is X?","answer":"A method."},
		{"question":"What is Y?","answer":"A technique."}
	]}`

	cards, err := parseCards(raw, 5)
	require.NoError(t, err)

	require.Len(t, cards, 2)
	assert.Equal(t, Flashcard{Question: "What is X?", Answer: "A method."}, cards[0])
	assert.Equal(t, Flashcard{Question: "What is Y?", Answer: "A technique."}, cards[1])
}

func TestParseCardsFencedJSON(t *testing.T) {
	raw := "```json\n{\"cards\":[{\"question\":\"Q1\",\"answer\":\"A1\"}]}\n```"

	cards, err := parseCards(raw, 5)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Q1", cards[0].Question)
}

func TestParseCardsLabelledFallback(t *testing.T) {
	raw := `Here are your flashcards:

Question: What is semantic communication?
Answer: A paradigm focused on the meaning of exchanged information.

Question: **What does the method improve?**
Answer: Transmission efficiency on noisy channels.`

	cards, err := parseCards(raw, 5)
	require.NoError(t, err)

	require.Len(t, cards, 2)
	assert.Equal(t, "What is semantic communication?", cards[0].Question)
	assert.Equal(t, "A paradigm focused on the meaning of exchanged information.", cards[0].Answer)
	assert.Equal(t, "What does the method improve?", cards[1].Question)
}

func TestParseCardsLabelledWithMultibyteCaseFolding(t *testing.T) {
	// Runes like İ (U+0130) change byte length when lowercased; preamble full
	// of them must not shift the marker offsets or push slicing out of range.
	tests := []struct {
		name     string
		preamble string
	}{
		{"growing rune", strings.Repeat("İ", 60)},
		{"shrinking rune", strings.Repeat("K", 10)},
		{"mixed", "İĞKı "},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			raw := test.preamble + "\nQuestion: What is X?\nAnswer: A method.\nQuestion: What is Y?\nAnswer: A technique."

			cards, err := parseCards(raw, 5)
			require.NoError(t, err)

			require.Len(t, cards, 2)
			assert.Equal(t, Flashcard{Question: "What is X?", Answer: "A method."}, cards[0])
			assert.Equal(t, Flashcard{Question: "What is Y?", Answer: "A technique."}, cards[1])
		})
	}
}

func TestParseCardsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose without markers", "I cannot generate flashcards for this text."},
		{"empty cards array", `{"cards":[]}`},
		{"blank pairs only", `{"cards":[{"question":" ","answer":" "}]}`},
		{"question without answer", "Question: What is X?\nNo answer follows."},
		{"empty string", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseCards(test.raw, 5)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseCardsDeduplicates(t *testing.T) {
	raw := `{"cards":[
		{"question":"What is X?","answer":"A method."},
		{"question":"what is x?","answer":"a method."},
		{"question":"What is Y?","answer":"A technique."}
	]}`

	cards, err := parseCards(raw, 5)
	require.NoError(t, err)

	require.Len(t, cards, 2)
	assert.Equal(t, "What is X?", cards[0].Question)
	assert.Equal(t, "What is Y?", cards[1].Question)
}

func TestParseCardsAppliesLimitAndCaps(t *testing.T) {
	longAnswer := strings.Repeat("word ", 100)
	raw := `{"cards":[
		{"question":"Q1","answer":"` + longAnswer + `"},
		{"question":"Q2","answer":"A2"},
		{"question":"Q3","answer":"A3"}
	]}`

	cards, err := parseCards(raw, 2)
	require.NoError(t, err)

	require.Len(t, cards, 2)
	assert.LessOrEqual(t, len([]rune(cards[0].Answer)), maxAnswerRunes+3)
	assert.True(t, strings.HasSuffix(cards[0].Answer, "..."))
}

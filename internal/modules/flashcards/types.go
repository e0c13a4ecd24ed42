package flashcards

// Flashcard is one question/answer pair covering a key concept from the
// source text. Order reflects extraction order.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type extractDTO struct {
	Input string `json:"input" binding:"required"`
	Count int    `json:"count"`
}

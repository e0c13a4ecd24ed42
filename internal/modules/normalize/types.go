package normalize

// Kind tags where a PaperInput's text came from.
type Kind string

const (
	KindRawText   Kind = "raw_text"
	KindArxivLink Kind = "arxiv_link"
)

// PaperInput is the normalized, immutable input for one request. For arXiv
// input the resolved metadata (title, id) is carried along for display.
type PaperInput struct {
	SourceText string `json:"sourceText"`
	SourceKind Kind   `json:"sourceKind"`
	Title      string `json:"title,omitempty"`
	ArxivID    string `json:"arxivId,omitempty"`
}

package retrieval

// Passage is one retrieved chunk of handbook text.
type Passage struct {
	Text   string
	Source string
	Score  float64
}

// Document is one chunk submitted for indexing.
type Document struct {
	ID     string
	Text   string
	Source string
}

const (
	BackendQdrant  = "qdrant"
	BackendChromem = "chromem"
	BackendNone    = "none"
)

// Metadata keys backends store chunks under.
const (
	PayloadText   = "text"
	PayloadSource = "source"
)

package retrieval

import "context"

// Retriever returns the k passages most relevant to query, best first.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]Passage, error)
}

// Indexer stores handbook chunks so a Retriever can find them.
type Indexer interface {
	Index(ctx context.Context, docs []Document) error
}

// Embedder turns text into vectors. Satisfied by *voyage.Client.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// Store is a backend that both serves and accepts handbook chunks.
type Store interface {
	Retriever
	Indexer
}

package chromem

import (
	"context"
	"fmt"
	"strings"

	"github.com/philippgille/chromem-go"

	"sccse-chatbot/internal/retrieval"
	pkgLog "sccse-chatbot/pkg/log"
)

// Store keeps handbook chunks in an embedded chromem-go collection.
type Store struct {
	collection *chromem.Collection
	embedder   retrieval.Embedder
	l          pkgLog.Logger
}

var (
	_ retrieval.Retriever = (*Store)(nil)
	_ retrieval.Indexer   = (*Store)(nil)
)

// Open opens (or creates) a persistent database at path. An empty path keeps
// everything in memory.
func Open(path string, compress bool, collection string, embedder retrieval.Embedder, l pkgLog.Logger) (*Store, error) {
	var (
		db  *chromem.DB
		err error
	)
	if path == "" {
		db = chromem.NewDB()
	} else {
		db, err = chromem.NewPersistentDB(path, compress)
		if err != nil {
			return nil, fmt.Errorf("open chromem db: %w", err)
		}
	}
	return New(db, collection, embedder, l)
}

// New wraps an existing chromem database.
func New(db *chromem.DB, collection string, embedder retrieval.Embedder, l pkgLog.Logger) (*Store, error) {
	ef := func(ctx context.Context, text string) ([]float32, error) {
		return embedder.EmbedQuery(ctx, text)
	}
	c, err := db.GetOrCreateCollection(collection, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("getting/creating collection %s: %w", collection, err)
	}
	return &Store{collection: c, embedder: embedder, l: l}, nil
}

func (s *Store) Index(ctx context.Context, docs []retrieval.Document) error {
	if len(docs) == 0 {
		return retrieval.ErrNoDocuments
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	embeddings, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed documents: %w", err)
	}

	chromemDocs := make([]chromem.Document, len(docs))
	for i, d := range docs {
		chromemDocs[i] = chromem.Document{
			ID:        d.ID,
			Content:   d.Text,
			Metadata:  map[string]string{retrieval.PayloadSource: d.Source},
			Embedding: embeddings[i],
		}
	}

	// Embeddings are precomputed, so one worker is enough.
	if err := s.collection.AddDocuments(ctx, chromemDocs, 1); err != nil {
		return fmt.Errorf("adding documents: %w", err)
	}

	s.l.Infof(ctx, "chromem retrieval: indexed %d chunks (total %d)", len(docs), s.collection.Count())
	return nil
}

func (s *Store) Retrieve(ctx context.Context, query string, k int) ([]retrieval.Passage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, retrieval.ErrEmptyQuery
	}

	// chromem requires k <= document count.
	count := s.collection.Count()
	if count == 0 || k <= 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	results, err := s.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying collection: %w", err)
	}

	passages := make([]retrieval.Passage, len(results))
	for i, r := range results {
		passages[i] = retrieval.Passage{
			Text:   r.Content,
			Source: r.Metadata[retrieval.PayloadSource],
			Score:  float64(r.Similarity),
		}
	}
	s.l.Debugf(ctx, "chromem retrieval: %d passages for query %q", len(passages), query)
	return passages, nil
}

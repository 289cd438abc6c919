package qdrant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sccse-chatbot/internal/retrieval"
	pkgLog "sccse-chatbot/pkg/log"
	pkgQdrant "sccse-chatbot/pkg/qdrant"
)

// pointNamespace derives deterministic point ids from chunk ids, so
// re-ingesting the same handbook overwrites instead of duplicating.
var pointNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

type implStore struct {
	client         *pkgQdrant.Client
	embedder       retrieval.Embedder
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// Store is both a Retriever and an Indexer over one Qdrant collection.
type Store interface {
	retrieval.Retriever
	retrieval.Indexer
	EnsureCollection(ctx context.Context) error
}

// New creates a Qdrant-backed store.
func New(client *pkgQdrant.Client, embedder retrieval.Embedder, collectionName string, vectorSize int, l pkgLog.Logger) Store {
	return &implStore{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}

// EnsureCollection creates the collection when it does not exist yet.
func (s *implStore) EnsureCollection(ctx context.Context) error {
	exists, err := s.client.CollectionExists(ctx, s.collectionName)
	if err != nil {
		return fmt.Errorf("check collection: %w", err)
	}
	if exists {
		return nil
	}
	err = s.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: s.collectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     s.vectorSize,
			Distance: pkgQdrant.DistanceCosine,
		},
	})
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	s.l.Infof(ctx, "qdrant retrieval: created collection %s (size=%d)", s.collectionName, s.vectorSize)
	return nil
}

func (s *implStore) Index(ctx context.Context, docs []retrieval.Document) error {
	if len(docs) == 0 {
		return retrieval.ErrNoDocuments
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	vectors, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		s.l.Errorf(ctx, "qdrant retrieval: failed to embed %d documents: %v", len(docs), err)
		return fmt.Errorf("failed to embed documents: %w", err)
	}

	points := make([]pkgQdrant.Point, len(docs))
	for i, d := range docs {
		points[i] = pkgQdrant.Point{
			ID:     uuid.NewSHA1(pointNamespace, []byte(d.ID)).String(),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"chunk_id":              d.ID,
				retrieval.PayloadText:   d.Text,
				retrieval.PayloadSource: d.Source,
			},
		}
	}

	if err := s.client.UpsertPoints(ctx, s.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		s.l.Errorf(ctx, "qdrant retrieval: failed to upsert points: %v", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	s.l.Infof(ctx, "qdrant retrieval: indexed %d chunks into %s", len(points), s.collectionName)
	return nil
}

func (s *implStore) Retrieve(ctx context.Context, query string, k int) ([]retrieval.Passage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, retrieval.ErrEmptyQuery
	}

	vector, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	resp, err := s.client.SearchPoints(ctx, s.collectionName, pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       k,
		WithPayload: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	passages := make([]retrieval.Passage, 0, len(resp.Result))
	for _, scored := range resp.Result {
		text, ok := scored.Payload[retrieval.PayloadText].(string)
		if !ok {
			s.l.Warnf(ctx, "qdrant retrieval: point %v has no text payload", scored.ID)
			continue
		}
		source, _ := scored.Payload[retrieval.PayloadSource].(string)
		passages = append(passages, retrieval.Passage{
			Text:   text,
			Source: source,
			Score:  scored.Score,
		})
	}

	s.l.Debugf(ctx, "qdrant retrieval: %d passages for query %q", len(passages), query)
	return passages, nil
}

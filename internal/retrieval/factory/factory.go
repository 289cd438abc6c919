package factory

import (
	"context"
	"fmt"

	"sccse-chatbot/config"
	"sccse-chatbot/internal/retrieval"
	"sccse-chatbot/internal/retrieval/chromem"
	"sccse-chatbot/internal/retrieval/qdrant"
	pkgLog "sccse-chatbot/pkg/log"
	pkgQdrant "sccse-chatbot/pkg/qdrant"
	"sccse-chatbot/pkg/voyage"
)

// New builds the retrieval backend named by cfg.Retrieval.Backend.
// "none" (or an empty name) yields retrieval.Noop.
func New(ctx context.Context, cfg *config.Config, l pkgLog.Logger) (retrieval.Store, error) {
	backend := cfg.Retrieval.Backend
	if backend == "" || backend == retrieval.BackendNone {
		l.Warnf(ctx, "retrieval.factory.New: no retrieval backend, answers use notes only")
		return retrieval.Noop{}, nil
	}

	embedder, err := newEmbedder(cfg.Voyage)
	if err != nil {
		return nil, err
	}

	switch backend {
	case retrieval.BackendQdrant:
		client := pkgQdrant.NewClient(cfg.Qdrant.URL).WithAPIKey(cfg.Qdrant.APIKey)
		store := qdrant.New(client, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, l)
		if err := store.EnsureCollection(ctx); err != nil {
			return nil, fmt.Errorf("qdrant collection %s: %w", cfg.Qdrant.CollectionName, err)
		}
		l.Infof(ctx, "retrieval.factory.New: qdrant collection %s at %s", cfg.Qdrant.CollectionName, cfg.Qdrant.URL)
		return store, nil

	case retrieval.BackendChromem:
		store, err := chromem.Open(cfg.Chromem.Path, cfg.Chromem.Compress, cfg.Chromem.Collection, embedder, l)
		if err != nil {
			return nil, err
		}
		l.Infof(ctx, "retrieval.factory.New: chromem collection %s at %q", cfg.Chromem.Collection, cfg.Chromem.Path)
		return store, nil

	default:
		return nil, fmt.Errorf("%w: %q", retrieval.ErrUnknownBackend, backend)
	}
}

func newEmbedder(cfg config.VoyageConfig) (retrieval.Embedder, error) {
	client, err := voyage.New(cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("voyage embedder: %w", err)
	}
	return client.WithModel(cfg.Model), nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"sccse-chatbot/internal/retrieval"
	"sccse-chatbot/pkg/log"
)

const (
	defaultChunkSize = 500
	defaultOverlap   = 50
	defaultBatchSize = 64
)

type options struct {
	ChunkSize int
	Overlap   int
	BatchSize int
}

// run indexes every file and returns the number of passages stored.
func run(ctx context.Context, idx retrieval.Indexer, files []string, opts options, l log.Logger) (int, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	total := 0
	for _, path := range files {
		docs, err := documents(path, opts)
		if err != nil {
			return total, err
		}
		if len(docs) == 0 {
			l.Warnf(ctx, "ingest: %s has no text, skipped", path)
			continue
		}

		for start := 0; start < len(docs); start += opts.BatchSize {
			end := min(start+opts.BatchSize, len(docs))
			if err := idx.Index(ctx, docs[start:end]); err != nil {
				return total, fmt.Errorf("index %s [%d:%d]: %w", path, start, end, err)
			}
			total += end - start
		}
		l.Infof(ctx, "ingest: %s -> %d passages", path, len(docs))
	}
	return total, nil
}

// documents chunks one file. Chunk ids are "<file name>#<n>" so a re-run
// replaces the previous passages of the same file.
func documents(path string, opts options) ([]retrieval.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	source := filepath.Base(path)
	chunks := retrieval.Chunk(string(raw), opts.ChunkSize, opts.Overlap)
	docs := make([]retrieval.Document, len(chunks))
	for i, c := range chunks {
		docs[i] = retrieval.Document{
			ID:     fmt.Sprintf("%s#%d", source, i),
			Text:   c,
			Source: source,
		}
	}
	return docs, nil
}

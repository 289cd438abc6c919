package retrieval

import "context"

// Noop is used when no retrieval backend is configured. It finds nothing.
type Noop struct{}

func (Noop) Retrieve(ctx context.Context, query string, k int) ([]Passage, error) {
	return nil, nil
}

func (Noop) Index(ctx context.Context, docs []Document) error {
	return nil
}

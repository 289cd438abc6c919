package retrieval

import "errors"

var (
	ErrEmptyQuery     = errors.New("retrieval: empty query")
	ErrNoDocuments    = errors.New("retrieval: no documents")
	ErrUnknownBackend = errors.New("retrieval: unknown backend")
)

package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage         = errors.New("message is empty")
	ErrRetrieverUnavailable = errors.New("retriever unavailable")
	ErrGeneratorUnavailable = errors.New("answer generator unavailable")
	ErrInvalidHistoryLimit  = errors.New("invalid history limit")
)

package chat

import (
	"context"

	"sccse-chatbot/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Chat stores the inbound message, routes it through the intent cascade
	// and returns the reply.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// History returns the user's stored turns, oldest first, and the latest summary.
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)

	// Preview classifies a message without any side effect.
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (PreviewOutput, error)

	// MaybeSummarize generates the user's one-shot summary once enough turns exist.
	MaybeSummarize(ctx context.Context, userID string) error
}

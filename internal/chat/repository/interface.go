package repository

import (
	"context"

	"sccse-chatbot/internal/model"
)

// Repository is the durable conversation store.
type Repository interface {
	AppendTurn(ctx context.Context, opt AppendTurnOptions) (model.Turn, error)
	// ListRecent returns the user's newest turns first.
	ListRecent(ctx context.Context, opt ListRecentOptions) ([]model.Turn, error)
	CountTurns(ctx context.Context, userID string) (int, error)
	AppendSummary(ctx context.Context, opt AppendSummaryOptions) (model.Summary, error)
	// LatestSummary returns ErrSummaryNotFound when the user has none.
	LatestSummary(ctx context.Context, userID string) (model.Summary, error)
}

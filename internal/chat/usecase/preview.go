package usecase

import (
	"context"
	"strings"

	"sccse-chatbot/internal/chat"
	"sccse-chatbot/internal/model"
	"sccse-chatbot/internal/router"
)

// Preview classifies a message without storing it or touching any state.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input chat.PreviewInput) (chat.PreviewOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.PreviewOutput{}, chat.ErrEmptyMessage
	}
	sc = model.NewScope(sc.UserID, sc.UserName)

	kind := uc.pending.Get(sc.UserID).Kind
	route := uc.router.Classify(ctx, router.Input{Message: message, Pending: kind})

	return chat.PreviewOutput{
		Intent:     route.Intent,
		Candidates: route.Candidates,
		OffTopic:   router.IsOffTopic(message),
		Pending:    kind.String(),
	}, nil
}

package usecase

import (
	"context"
	"errors"

	"sccse-chatbot/internal/chat"
	"sccse-chatbot/internal/chat/repository"
	"sccse-chatbot/internal/model"
)

// History returns up to input.Limit of the user's newest turns, oldest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input chat.HistoryInput) (chat.HistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = chat.DefaultHistoryLimit
	}
	if limit < 0 || limit > chat.MaxHistoryLimit {
		return chat.HistoryOutput{}, chat.ErrInvalidHistoryLimit
	}
	sc = model.NewScope(sc.UserID, sc.UserName)

	recent, err := uc.repo.ListRecent(ctx, repository.ListRecentOptions{UserID: sc.UserID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.History: user=%s: %v", sc.UserID, err)
		return chat.HistoryOutput{}, err
	}

	out := chat.HistoryOutput{Turns: chronological(recent)}

	summary, err := uc.repo.LatestSummary(ctx, sc.UserID)
	switch {
	case err == nil:
		out.Summary = summary.Text
	case !errors.Is(err, repository.ErrSummaryNotFound):
		return chat.HistoryOutput{}, err
	}

	return out, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"sccse-chatbot/internal/chat/repository"
	"sccse-chatbot/internal/model"
)

// MaybeSummarize writes the user's summary once the durable turn count
// reaches the threshold. A user is summarised at most once; concurrent calls
// for the same user share one run.
func (uc *implUseCase) MaybeSummarize(ctx context.Context, userID string) error {
	_, err, _ := uc.summaries.Do(userID, func() (interface{}, error) {
		return nil, uc.summarize(ctx, userID)
	})
	return err
}

func (uc *implUseCase) summarize(ctx context.Context, userID string) error {
	count, err := uc.repo.CountTurns(ctx, userID)
	if err != nil {
		return err
	}
	if count < uc.cfg.SummaryThreshold {
		return nil
	}

	_, err = uc.repo.LatestSummary(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrSummaryNotFound) {
		return err
	}

	recent, err := uc.repo.ListRecent(ctx, repository.ListRecentOptions{
		UserID: userID,
		Limit:  uc.cfg.SummaryWindow,
	})
	if err != nil {
		return err
	}

	text, err := uc.generate(ctx, buildSummaryPrompt(chronological(recent)))
	if err != nil {
		if dep, ok := upstreamDependency(err); ok {
			uc.metrics.IncUpstreamFailure(dep)
		}
		return fmt.Errorf("generate summary: %w", err)
	}

	if _, err := uc.repo.AppendSummary(ctx, repository.AppendSummaryOptions{UserID: userID, Text: text}); err != nil {
		return err
	}

	uc.metrics.IncSummary()
	uc.l.Infof(ctx, "chat.usecase.MaybeSummarize: stored summary for user=%s from %d turns", userID, len(recent))
	return nil
}

// chronological reverses a newest-first list into a new slice.
func chronological(turns []model.Turn) []model.Turn {
	out := make([]model.Turn, len(turns))
	for i, t := range turns {
		out[len(turns)-1-i] = t
	}
	return out
}

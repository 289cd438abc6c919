package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"sccse-chatbot/internal/chat"
	"sccse-chatbot/internal/model"
	"sccse-chatbot/internal/retrieval"
	"sccse-chatbot/pkg/llmprovider"
)

// handleAnswer is the default path: ground the message on handbook passages
// and the notes ledger, then ask the generator once.
func (uc *implUseCase) handleAnswer(ctx context.Context, sc model.Scope, message string) (string, bool, error) {
	var (
		passages  []retrieval.Passage
		notesText string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := uc.retrieve(gctx, message)
		passages = p
		return err
	})
	g.Go(func() error {
		t, err := uc.ledger.Read(gctx)
		if err != nil {
			uc.metrics.IncUpstreamFailure(chat.DependencyNotes)
			return fmt.Errorf("read notes: %w", err)
		}
		notesText = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", false, err
	}

	prompt := buildAnswerPrompt(message, notesText, passages, uc.cfg.MaxPassageChars)
	answer, err := uc.generate(ctx, prompt)
	if err != nil {
		return "", false, err
	}

	uc.remember(sc.UserID, message, answer)
	if err := uc.persistReply(ctx, sc, answer); err != nil {
		return "", false, err
	}

	if err := uc.MaybeSummarize(ctx, sc.UserID); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.handleAnswer: summary for user=%s failed: %v", sc.UserID, err)
	}
	return answer, true, nil
}

// retrieve bounds each attempt by the configured timeout and retries once.
func (uc *implUseCase) retrieve(ctx context.Context, query string) ([]retrieval.Passage, error) {
	var lastErr error
	for attempt := 0; attempt < retrieveAttempts; attempt++ {
		actx, cancel := context.WithTimeout(ctx, uc.cfg.RetrieveTimeout)
		passages, err := uc.retriever.Retrieve(actx, query, uc.cfg.RetrieveTopK)
		cancel()
		if err == nil {
			return passages, nil
		}
		lastErr = err
		uc.l.Warnf(ctx, "chat.usecase.retrieve: attempt %d failed: %v", attempt+1, err)
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("%w: %v", chat.ErrRetrieverUnavailable, lastErr)
}

// generate sends a single-turn prompt and returns the trimmed answer text.
func (uc *implUseCase) generate(ctx context.Context, prompt string) (string, error) {
	req := llmprovider.UserPrompt(prompt, uc.cfg.Temperature)
	req.MaxTokens = uc.cfg.MaxTokens

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", chat.ErrGeneratorUnavailable, err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", chat.ErrGeneratorUnavailable)
	}
	return text, nil
}

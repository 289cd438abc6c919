package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sccse-chatbot/internal/chat"
	"sccse-chatbot/internal/chat/repository"
	"sccse-chatbot/internal/model"
	"sccse-chatbot/internal/router"
)

// Chat stores the inbound turn, then walks the candidate intents in rule
// order until one handler produces a reply.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}
	sc = model.NewScope(sc.UserID, sc.UserName)

	unlock := uc.locks.Lock(sc.UserID)
	defer unlock()

	if _, err := uc.repo.AppendTurn(ctx, repository.AppendTurnOptions{
		UserID: sc.UserID,
		Role:   model.RoleUser,
		Text:   message,
	}); err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Chat: store inbound turn user=%s: %v", sc.UserID, err)
		return chat.ChatOutput{}, fmt.Errorf("store inbound turn: %w", err)
	}

	route := uc.router.Classify(ctx, router.Input{
		Message: message,
		Pending: uc.pending.Get(sc.UserID).Kind,
	})

	for _, intent := range route.Candidates {
		reply, handled, err := uc.dispatch(ctx, sc, intent, message)
		if err != nil {
			if dep, ok := upstreamDependency(err); ok {
				uc.metrics.IncUpstreamFailure(dep)
				uc.l.Warnf(ctx, "chat.usecase.Chat: user=%s intent=%s upstream failure: %v", sc.UserID, intent, err)
				return chat.ChatOutput{Reply: chat.ReplyServiceUnavailable, Intent: intent}, nil
			}
			uc.l.Errorf(ctx, "chat.usecase.Chat: user=%s intent=%s: %v", sc.UserID, intent, err)
			return chat.ChatOutput{}, err
		}
		if !handled {
			continue
		}

		uc.metrics.IncIntent(string(intent))
		uc.l.Infof(ctx, "chat.usecase.Chat: user=%s intent=%s", sc.UserID, intent)
		return chat.ChatOutput{Reply: reply, Intent: intent}, nil
	}

	// The answer rule always matches, so this is only reached with a custom router.
	return chat.ChatOutput{}, fmt.Errorf("no handler accepted message for user %s", sc.UserID)
}

func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, intent router.Intent, message string) (string, bool, error) {
	switch intent {
	case router.IntentOffTopic:
		return uc.handleOffTopic(ctx, sc)
	case router.IntentNameQuery:
		return uc.handleNameQuery(sc)
	case router.IntentConfirmNote:
		return uc.handleConfirmNote(ctx, sc, message)
	case router.IntentConfirmDelete:
		return uc.handleConfirmDelete(ctx, sc, message)
	case router.IntentSaveNote:
		return uc.handleSaveNote(sc, message)
	case router.IntentDeleteNotes:
		return uc.handleDeleteNotes(sc)
	case router.IntentSkillProvenance:
		return uc.handleProvenance(ctx, sc)
	case router.IntentEvents:
		return uc.handleEvents(ctx, sc, message)
	case router.IntentTeamRecommendation:
		return uc.handleTeamRecommendation(ctx, sc)
	case router.IntentAnswer:
		return uc.handleAnswer(ctx, sc, message)
	default:
		return "", false, nil
	}
}

// persistReply stores an outbound turn.
func (uc *implUseCase) persistReply(ctx context.Context, sc model.Scope, reply string) error {
	if _, err := uc.repo.AppendTurn(ctx, repository.AppendTurnOptions{
		UserID: sc.UserID,
		Role:   model.RoleAssistant,
		Text:   reply,
	}); err != nil {
		return fmt.Errorf("store reply turn: %w", err)
	}
	return nil
}

func upstreamDependency(err error) (string, bool) {
	switch {
	case errors.Is(err, chat.ErrRetrieverUnavailable):
		return chat.DependencyRetriever, true
	case errors.Is(err, chat.ErrGeneratorUnavailable):
		return chat.DependencyGenerator, true
	default:
		return "", false
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"sccse-chatbot/internal/chat"
	"sccse-chatbot/internal/chat/repository"
	"sccse-chatbot/internal/memory"
	"sccse-chatbot/internal/model"
	"sccse-chatbot/internal/notes"
	"sccse-chatbot/internal/pending"
	"sccse-chatbot/internal/router"
	"sccse-chatbot/internal/skill"
)

func (uc *implUseCase) handleOffTopic(ctx context.Context, sc model.Scope) (string, bool, error) {
	if err := uc.persistReply(ctx, sc, chat.ReplyOffTopic); err != nil {
		return "", false, err
	}
	return chat.ReplyOffTopic, true, nil
}

func (uc *implUseCase) handleNameQuery(sc model.Scope) (string, bool, error) {
	if sc.UserName == "" {
		return chat.ReplyUnknownName, true, nil
	}
	return fmt.Sprintf(chat.ReplyKnownNameFormat, sc.UserName), true, nil
}

func (uc *implUseCase) handleConfirmNote(ctx context.Context, sc model.Scope, message string) (string, bool, error) {
	st, outcome := uc.pending.Confirm(sc.UserID, message)
	switch outcome {
	case pending.OutcomeNothingPending:
		return "", false, nil
	case pending.OutcomeRejected:
		return chat.ReplyIncorrectPasskey, true, nil
	}

	if err := uc.ledger.Append(ctx, st.Draft); err != nil {
		// Keep the draft so the admin can retry.
		uc.pending.RequestNote(sc.UserID, st.Draft)
		return "", false, fmt.Errorf("append note: %w", err)
	}
	return fmt.Sprintf(chat.ReplyNoteSavedFormat, st.Draft), true, nil
}

func (uc *implUseCase) handleConfirmDelete(ctx context.Context, sc model.Scope, message string) (string, bool, error) {
	_, outcome := uc.pending.Confirm(sc.UserID, message)
	switch outcome {
	case pending.OutcomeNothingPending:
		return "", false, nil
	case pending.OutcomeRejected:
		return chat.ReplyIncorrectPasskey, true, nil
	}

	if err := uc.ledger.Truncate(ctx); err != nil {
		uc.pending.RequestDelete(sc.UserID)
		return "", false, fmt.Errorf("truncate notes: %w", err)
	}
	return chat.ReplyNotesDeleted, true, nil
}

// handleSaveNote asks for the passkey. A bare trigger with no text gets the
// same prompt but leaves no draft pending.
func (uc *implUseCase) handleSaveNote(sc model.Scope, message string) (string, bool, error) {
	draft, ok := router.NoteDraft(message)
	if !ok {
		return "", false, nil
	}
	if draft != "" {
		uc.pending.RequestNote(sc.UserID, draft)
	}
	return chat.ReplyPasskeyRequired, true, nil
}

func (uc *implUseCase) handleDeleteNotes(sc model.Scope) (string, bool, error) {
	uc.pending.RequestDelete(sc.UserID)
	return chat.ReplyPasskeyRequired, true, nil
}

func (uc *implUseCase) handleProvenance(ctx context.Context, sc model.Scope) (string, bool, error) {
	origin, _, err := uc.skillOrigin(ctx, sc)
	if err != nil {
		return "", false, err
	}
	switch origin {
	case skill.OriginMemory:
		return chat.ReplyProvenanceMemory, true, nil
	case skill.OriginSummary:
		return chat.ReplyProvenanceSummary, true, nil
	default:
		return chat.ReplyProvenanceNone, true, nil
	}
}

// handleEvents answers directly only when the ledger holds no notes;
// otherwise it declines so later rules can answer from the notes.
func (uc *implUseCase) handleEvents(ctx context.Context, sc model.Scope, message string) (string, bool, error) {
	text, err := uc.ledger.Read(ctx)
	if err != nil {
		uc.metrics.IncUpstreamFailure(chat.DependencyNotes)
		return "", false, fmt.Errorf("read notes: %w", err)
	}
	if len(notes.Entries(text)) > 0 {
		return "", false, nil
	}

	if err := uc.persistReply(ctx, sc, chat.ReplyNoEvents); err != nil {
		return "", false, err
	}
	uc.remember(sc.UserID, message, chat.ReplyNoEvents)
	return chat.ReplyNoEvents, true, nil
}

func (uc *implUseCase) handleTeamRecommendation(ctx context.Context, sc model.Scope) (string, bool, error) {
	origin, category, err := uc.skillOrigin(ctx, sc)
	if err != nil {
		return "", false, err
	}

	reply := chat.ReplyNoSkills
	if origin != skill.OriginNone {
		uc.memory.Get(sc.UserID).Append(memory.Entry{
			Role:    memory.RoleAssistant,
			Content: fmt.Sprintf(chat.SkillOriginFormat, origin),
		})
		reply = endorsement(category)
	}

	if err := uc.persistReply(ctx, sc, reply); err != nil {
		return "", false, err
	}
	return reply, true, nil
}

// skillOrigin looks for skill evidence in the memory buffer first, then in the summary.
func (uc *implUseCase) skillOrigin(ctx context.Context, sc model.Scope) (skill.Origin, skill.Category, error) {
	summary, err := uc.repo.LatestSummary(ctx, sc.UserID)
	if err != nil && !errors.Is(err, repository.ErrSummaryNotFound) {
		return skill.OriginNone, skill.CategoryNone, fmt.Errorf("load summary: %w", err)
	}
	origin, category := uc.skills.Provenance(uc.memory.Get(sc.UserID).UserText(), summary.Text)
	return origin, category, nil
}

// remember records an exchange in the user's short-term memory.
func (uc *implUseCase) remember(userID, message, reply string) {
	buf := uc.memory.Get(userID)
	buf.Append(memory.Entry{Role: memory.RoleUser, Content: message})
	buf.Append(memory.Entry{Role: memory.RoleAssistant, Content: reply})
}

func endorsement(c skill.Category) string {
	switch c {
	case skill.CategoryTech:
		return chat.ReplyTeamTech
	case skill.CategoryDesign:
		return chat.ReplyTeamDesign
	case skill.CategoryPR:
		return chat.ReplyTeamPR
	default:
		return chat.ReplyNoSkills
	}
}

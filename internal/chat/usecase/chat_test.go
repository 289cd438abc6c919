package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sccse-chatbot/internal/chat"
	"sccse-chatbot/internal/chat/repository"
	"sccse-chatbot/internal/memory"
	"sccse-chatbot/internal/model"
	"sccse-chatbot/internal/pending"
	"sccse-chatbot/internal/router"
)

func send(t *testing.T, f *fixture, sc model.Scope, msg string) chat.ChatOutput {
	t.Helper()
	out, err := f.uc.Chat(context.Background(), sc, chat.ChatInput{Message: msg})
	require.NoError(t, err)
	return out
}

func turns(t *testing.T, f *fixture, userID string) []model.Turn {
	t.Helper()
	got, err := f.repo.ListRecent(context.Background(), repository.ListRecentOptions{UserID: userID, Limit: 100})
	require.NoError(t, err)
	return chronological(got)
}

func TestChat_EmptyMessage(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Chat(context.Background(), model.NewScope("u1", ""), chat.ChatInput{Message: "   "})
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
	assert.Empty(t, turns(t, f, "u1"))
}

func TestChat_SaveNoteWithPasskey(t *testing.T) {
	f := newFixture(t)
	sc := model.NewScope("u1", "")

	out := send(t, f, sc, "note that club meets Friday")
	assert.Equal(t, chat.ReplyPasskeyRequired, out.Reply)
	assert.Equal(t, router.IntentSaveNote, out.Intent)
	assert.Equal(t, pending.KindNote, f.uc.pending.Get("u1").Kind)

	out = send(t, f, sc, testPasskey)
	assert.Equal(t, "✅ Note saved: 'club meets Friday'", out.Reply)
	assert.Equal(t, []string{"club meets Friday"}, f.ledger.entries)
	assert.Equal(t, pending.KindNone, f.uc.pending.Get("u1").Kind)
	assert.Zero(t, f.llm.calls())
}

func TestChat_WrongPasskeyKeepsDraft(t *testing.T) {
	f := newFixture(t)
	sc := model.NewScope("u1", "")

	send(t, f, sc, "note that club meets Friday")
	for i := 0; i < 2; i++ {
		out := send(t, f, sc, "guess")
		assert.Equal(t, chat.ReplyIncorrectPasskey, out.Reply)
	}
	st := f.uc.pending.Get("u1")
	assert.Equal(t, pending.KindNote, st.Kind)
	assert.Equal(t, "club meets Friday", st.Draft)
	assert.Empty(t, f.ledger.entries)
}

func TestChat_PendingIsPerUser(t *testing.T) {
	f := newFixture(t)

	send(t, f, model.NewScope("admin", ""), "note that hackathon on Monday")
	out := send(t, f, model.NewScope("other", ""), testPasskey)

	assert.NotEqual(t, chat.ReplyIncorrectPasskey, out.Reply)
	assert.Equal(t, pending.KindNote, f.uc.pending.Get("admin").Kind)
	assert.Empty(t, f.ledger.entries)
}

func TestChat_DeleteNotes(t *testing.T) {
	f := newFixture(t)
	f.ledger.entries = []string{"old event"}
	sc := model.NewScope("u1", "")

	out := send(t, f, sc, "please clear notes")
	assert.Equal(t, chat.ReplyPasskeyRequired, out.Reply)

	out = send(t, f, sc, testPasskey)
	assert.Equal(t, chat.ReplyNotesDeleted, out.Reply)
	assert.Empty(t, f.ledger.entries)
}

func TestChat_NewRequestSupersedesPending(t *testing.T) {
	f := newFixture(t)
	sc := model.NewScope("u1", "")

	f.uc.pending = pending.New(testPasskey, 20*time.Millisecond)

	send(t, f, sc, "note that first")
	// A pending note captures every message, so the delete request is only
	// possible after the note is confirmed or the state expires.
	out := send(t, f, sc, "clear notes")
	assert.Equal(t, chat.ReplyIncorrectPasskey, out.Reply)

	require.Eventually(t, func() bool {
		return f.uc.pending.Get("u1").Kind == pending.KindNone
	}, time.Second, 10*time.Millisecond)
	out = send(t, f, sc, "clear notes")
	assert.Equal(t, chat.ReplyPasskeyRequired, out.Reply)
	assert.Equal(t, pending.KindDelete, f.uc.pending.Get("u1").Kind)
}

func TestChat_BareNoteTriggerPromptsWithoutDraft(t *testing.T) {
	f := newFixture(t)
	sc := model.NewScope("u1", "")

	out := send(t, f, sc, "note that")
	assert.Equal(t, chat.ReplyPasskeyRequired, out.Reply)
	assert.Equal(t, router.IntentSaveNote, out.Intent)
	assert.Equal(t, pending.KindNone, f.uc.pending.Get("u1").Kind)
	assert.Zero(t, f.llm.calls())

	out = send(t, f, sc, testPasskey)
	assert.NotEqual(t, chat.ReplyIncorrectPasskey, out.Reply)
	assert.Empty(t, f.ledger.entries)
}

func TestChat_TeamFromPluralSkillWords(t *testing.T) {
	f := newFixture(t)
	sc := model.NewScope("u1", "")

	send(t, f, sc, "I make posters and logos for fun")
	out := send(t, f, sc, "which team should I join")
	assert.Equal(t, chat.ReplyTeamDesign, out.Reply)
}

func TestChat_CountMemoryPolicy(t *testing.T) {
	f := newFixture(t)
	f.uc = New(&mockLogger{}, f.repo, router.New(&mockLogger{}), f.ledger, f.retriever,
		createManagerFromGeminiClient(f.llm, &mockLogger{}), nil,
		Config{Passkey: testPasskey, MemoryPolicy: memory.PolicyCount, MemoryMaxEntries: 2})
	sc := model.NewScope("u1", "")

	send(t, f, sc, "tell me about sccse workshops")
	send(t, f, sc, "and the chapter meetings?")

	snap := f.uc.memory.Get("u1").Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "and the chapter meetings?", snap[0].Content)
}

func TestChat_TeamWithoutSkills(t *testing.T) {
	f := newFixture(t)
	out := send(t, f, model.NewScope("u1", ""), "which team should I join")
	assert.Equal(t, chat.ReplyNoSkills, out.Reply)
	assert.Equal(t, router.IntentTeamRecommendation, out.Intent)
}

func TestChat_TeamFromMemory(t *testing.T) {
	f := newFixture(t)
	sc := model.NewScope("u1", "")

	send(t, f, sc, "I love Figma and UI design")
	out := send(t, f, sc, "which team should I join")
	assert.Equal(t, chat.ReplyTeamDesign, out.Reply)

	snapshot := f.uc.memory.Get("u1").Snapshot()
	assert.Equal(t, "[SKILL_ORIGIN:memory]", snapshot[len(snapshot)-1].Content)

	out = send(t, f, sc, "how do you know that?")
	assert.Equal(t, chat.ReplyProvenanceMemory, out.Reply)
}

func TestChat_TeamFromSummary(t *testing.T) {
	f := newFixture(t)
	_, err := f.repo.AppendSummary(context.Background(), repository.AppendSummaryOptions{
		UserID: "u1", Text: "The user enjoys public speaking and marketing.",
	})
	require.NoError(t, err)

	out := send(t, f, model.NewScope("u1", ""), "what team fits me")
	assert.Equal(t, chat.ReplyTeamPR, out.Reply)

	out = send(t, f, model.NewScope("u1", ""), "how did you know")
	assert.Equal(t, chat.ReplyProvenanceSummary, out.Reply)
}

func TestChat_ProvenanceNone(t *testing.T) {
	f := newFixture(t)
	out := send(t, f, model.NewScope("u1", ""), "how do you know about me")
	assert.Equal(t, chat.ReplyProvenanceNone, out.Reply)
}

func TestChat_NoEventsSkipsGenerator(t *testing.T) {
	f := newFixture(t)
	sc := model.NewScope("u1", "")

	out := send(t, f, sc, "what's the next event")
	assert.Equal(t, chat.ReplyNoEvents, out.Reply)
	assert.Equal(t, router.IntentEvents, out.Intent)
	assert.Zero(t, f.llm.calls())
	assert.Zero(t, f.retriever.calls)

	history := turns(t, f, "u1")
	require.Len(t, history, 2)
	assert.Equal(t, chat.ReplyNoEvents, history[1].Text)
	assert.Len(t, f.uc.memory.Get("u1").Snapshot(), 2)
}

func TestChat_EventsWithNotesUseGenerator(t *testing.T) {
	f := newFixture(t)
	f.ledger.entries = []string{"Hackathon on 5 March in the main lab"}
	f.llm.response = textResponse("The hackathon is on 5 March in the main lab.")

	out := send(t, f, model.NewScope("u1", ""), "any upcoming event?")
	assert.Equal(t, router.IntentAnswer, out.Intent)
	assert.Equal(t, "The hackathon is on 5 March in the main lab.", out.Reply)
	require.Equal(t, 1, f.llm.calls())
	assert.Contains(t, f.llm.prompts[0], "- Hackathon on 5 March in the main lab")
}

func TestChat_OffTopic(t *testing.T) {
	f := newFixture(t)
	out := send(t, f, model.NewScope("u1", ""), "what is python")
	assert.Equal(t, chat.ReplyOffTopic, out.Reply)
	assert.Zero(t, f.llm.calls())

	history := turns(t, f, "u1")
	require.Len(t, history, 2)
	assert.Equal(t, model.RoleAssistant, history[1].Role)
}

func TestChat_NameQuery(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "Your name is Asha.", send(t, f, model.NewScope("u1", "Asha"), "what is my name").Reply)
	assert.Equal(t, chat.ReplyUnknownName, send(t, f, model.NewScope("u2", ""), "What is my name?").Reply)

	// Name replies are not stored.
	assert.Len(t, turns(t, f, "u1"), 1)
}

func TestChat_DefaultAnswerPrompt(t *testing.T) {
	f := newFixture(t)
	f.retriever.passages[0].Text = strings.Repeat("x", 600)

	out := send(t, f, model.NewScope("u1", ""), "who leads the chapter")
	assert.Equal(t, "Happy to help with SCCSE!", out.Reply)

	require.Equal(t, 1, f.llm.calls())
	prompt := f.llm.prompts[0]
	assert.Contains(t, prompt, `QUERY: "who leads the chapter"`)
	assert.Contains(t, prompt, strings.Repeat("x", 500)+"\n\nCRITICAL RULES")
	assert.NotContains(t, prompt, strings.Repeat("x", 501))
}

func TestChat_AnonymousUser(t *testing.T) {
	f := newFixture(t)
	send(t, f, model.Scope{}, "hello")
	assert.NotEmpty(t, turns(t, f, model.AnonymousUserID))
}

func TestChat_RetrieverFailure(t *testing.T) {
	f := newFixture(t)
	f.retriever.err = errUpstream

	out, err := f.uc.Chat(context.Background(), model.NewScope("u1", ""), chat.ChatInput{Message: "tell me about sccse"})
	require.NoError(t, err)
	assert.Equal(t, chat.ReplyServiceUnavailable, out.Reply)
	assert.Equal(t, retrieveAttempts, f.retriever.calls)
	assert.Zero(t, f.llm.calls())

	// Only the inbound turn is stored.
	history := turns(t, f, "u1")
	require.Len(t, history, 1)
	assert.Equal(t, model.RoleUser, history[0].Role)
}

func TestChat_GeneratorFailure(t *testing.T) {
	f := newFixture(t)
	f.llm.response = nil
	f.llm.err = errUpstream

	out, err := f.uc.Chat(context.Background(), model.NewScope("u1", ""), chat.ChatInput{Message: "tell me about sccse"})
	require.NoError(t, err)
	assert.Equal(t, chat.ReplyServiceUnavailable, out.Reply)
	assert.Len(t, turns(t, f, "u1"), 1)
	assert.Empty(t, f.uc.memory.Get("u1").Snapshot())
}

func TestChat_NotesReadFailure(t *testing.T) {
	f := newFixture(t)
	f.ledger.readErr = errUpstream

	_, err := f.uc.Chat(context.Background(), model.NewScope("u1", ""), chat.ChatInput{Message: "upcoming schedule"})
	assert.ErrorIs(t, err, errUpstream)
}

func TestChat_ConcurrentUsers(t *testing.T) {
	f := newFixture(t)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			sc := model.NewScope(fmt.Sprintf("u%d", i), "")
			_, err := f.uc.Chat(context.Background(), sc, chat.ChatInput{Message: "note that item " + fmt.Sprint(i)})
			assert.NoError(t, err)
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	for i := 0; i < 8; i++ {
		st := f.uc.pending.Get(fmt.Sprintf("u%d", i))
		assert.Equal(t, fmt.Sprintf("item %d", i), st.Draft)
	}
}

func TestPreview_NoSideEffects(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Preview(context.Background(), model.NewScope("u1", ""), chat.PreviewInput{Message: "note that x"})
	require.NoError(t, err)
	assert.Equal(t, router.IntentSaveNote, out.Intent)
	assert.Equal(t, "idle", out.Pending)
	assert.False(t, out.OffTopic)
	assert.Equal(t, pending.KindNone, f.uc.pending.Get("u1").Kind)
	assert.Empty(t, turns(t, f, "u1"))

	_, err = f.uc.Preview(context.Background(), model.NewScope("u1", ""), chat.PreviewInput{})
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	sc := model.NewScope("u1", "")
	send(t, f, sc, "what is python")

	out, err := f.uc.History(context.Background(), sc, chat.HistoryInput{})
	require.NoError(t, err)
	require.Len(t, out.Turns, 2)
	assert.Equal(t, "what is python", out.Turns[0].Text)
	assert.Equal(t, chat.ReplyOffTopic, out.Turns[1].Text)
	assert.Empty(t, out.Summary)

	_, err = f.uc.History(context.Background(), sc, chat.HistoryInput{Limit: chat.MaxHistoryLimit + 1})
	assert.ErrorIs(t, err, chat.ErrInvalidHistoryLimit)
}

package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"sccse-chatbot/internal/chat/repository"
	chatSQLite "sccse-chatbot/internal/chat/repository/sqlite"
	"sccse-chatbot/internal/notes"
	"sccse-chatbot/internal/retrieval"
	"sccse-chatbot/internal/router"
	"sccse-chatbot/pkg/gemini"
	"sccse-chatbot/pkg/llmprovider"
	pkgSQLite "sccse-chatbot/pkg/sqlite"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// createManagerFromGeminiClient creates a Provider Manager with a Gemini provider for testing
func createManagerFromGeminiClient(client gemini.Client, logger *mockLogger) *llmprovider.Manager {
	provider := llmprovider.NewGeminiAdapter(client)
	config := &llmprovider.Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}
	return llmprovider.NewManager([]llmprovider.Provider{provider}, config, logger)
}

// Mock Gemini client for testing. It records every prompt it receives.
type mockGeminiClient struct {
	mu       sync.Mutex
	response *gemini.Response
	err      error
	prompts  []string
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(req.Messages) > 0 && len(req.Messages[0].Parts) > 0 {
		m.prompts = append(m.prompts, req.Messages[0].Parts[0].Text)
	}
	return m.response, m.err
}

func (m *mockGeminiClient) Model() string {
	return "gemini-test"
}

func (m *mockGeminiClient) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

func textResponse(text string) *gemini.Response {
	return &gemini.Response{
		Content: gemini.Content{Role: gemini.RoleModel, Parts: []gemini.Part{{Text: text}}},
		Usage:   &gemini.Usage{},
	}
}

// memLedger is an in-memory notes.Ledger.
type memLedger struct {
	mu      sync.Mutex
	entries []string
	readErr error
}

func (m *memLedger) Read(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return "", m.readErr
	}
	return notes.Render(m.entries), nil
}

func (m *memLedger) Append(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if text == "" {
		return notes.ErrEmptyNote
	}
	m.entries = append(m.entries, text)
	return nil
}

func (m *memLedger) Truncate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

// stubRetriever returns fixed passages or fails.
type stubRetriever struct {
	mu       sync.Mutex
	passages []retrieval.Passage
	err      error
	calls    int
}

func (s *stubRetriever) Retrieve(ctx context.Context, query string, k int) ([]retrieval.Passage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if k < len(s.passages) {
		return s.passages[:k], nil
	}
	return s.passages, nil
}

var errUpstream = errors.New("upstream down")

type fixture struct {
	uc        *implUseCase
	repo      repository.Repository
	ledger    *memLedger
	retriever *stubRetriever
	llm       *mockGeminiClient
}

const testPasskey = "admin123"

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := pkgSQLite.Open(ctx, pkgSQLite.MemoryPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := &mockLogger{}
	repo, err := chatSQLite.New(ctx, db, l)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}

	f := &fixture{
		repo:   repo,
		ledger: &memLedger{},
		retriever: &stubRetriever{passages: []retrieval.Passage{
			{Text: "The Tech Team runs workshops.", Source: "handbook"},
		}},
		llm: &mockGeminiClient{response: textResponse("Happy to help with SCCSE!")},
	}
	f.uc = New(l, repo, router.New(l), f.ledger, f.retriever,
		createManagerFromGeminiClient(f.llm, l), nil, Config{Passkey: testPasskey})
	return f
}

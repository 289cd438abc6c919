package usecase

import (
	"golang.org/x/sync/singleflight"

	"sccse-chatbot/internal/chat"
	"sccse-chatbot/internal/chat/repository"
	"sccse-chatbot/internal/memory"
	"sccse-chatbot/internal/notes"
	"sccse-chatbot/internal/pending"
	"sccse-chatbot/internal/retrieval"
	"sccse-chatbot/internal/router"
	"sccse-chatbot/internal/skill"
	"sccse-chatbot/pkg/keylock"
	pkgLog "sccse-chatbot/pkg/log"
	"sccse-chatbot/pkg/metrics"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	router    router.Router
	ledger    notes.Ledger
	retriever retrieval.Retriever
	llm       Generator
	metrics   *metrics.Metrics
	cfg       Config

	locks     *keylock.KeyLock
	pending   *pending.Machine
	memory    *memory.Store
	skills    *skill.Extractor
	summaries singleflight.Group
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance. m may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	rt router.Router,
	ledger notes.Ledger,
	retriever retrieval.Retriever,
	llm Generator,
	m *metrics.Metrics,
	cfg Config,
) *implUseCase {
	cfg = cfg.withDefaults()
	if retriever == nil {
		retriever = retrieval.Noop{}
	}

	policy, limit := cfg.MemoryPolicy, cfg.memoryLimit()
	return &implUseCase{
		l:         l,
		repo:      repo,
		router:    rt,
		ledger:    ledger,
		retriever: retriever,
		llm:       llm,
		metrics:   m,
		cfg:       cfg,
		locks:     keylock.New(),
		pending:   pending.New(cfg.Passkey, cfg.PendingTTL),
		memory: memory.NewStore(func() memory.Policy {
			return memory.NewPolicy(policy, limit)
		}, cfg.MemoryMaxUsers, cfg.MemoryTTL),
		skills: skill.NewExtractor(cfg.Skills),
	}
}

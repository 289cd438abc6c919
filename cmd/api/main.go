package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sccse-chatbot/config"
	_ "sccse-chatbot/docs" // Swagger docs
	chatSQLite "sccse-chatbot/internal/chat/repository/sqlite"
	tgDelivery "sccse-chatbot/internal/chat/delivery/telegram"
	chatUC "sccse-chatbot/internal/chat/usecase"
	"sccse-chatbot/internal/httpserver"
	"sccse-chatbot/internal/middleware"
	"sccse-chatbot/internal/notes"
	notesFile "sccse-chatbot/internal/notes/file"
	notesMemos "sccse-chatbot/internal/notes/memos"
	retrievalFactory "sccse-chatbot/internal/retrieval/factory"
	"sccse-chatbot/internal/router"
	"sccse-chatbot/internal/skill"
	"sccse-chatbot/internal/test"
	"sccse-chatbot/pkg/llmprovider"
	"sccse-chatbot/pkg/log"
	"sccse-chatbot/pkg/metrics"
	pkgSQLite "sccse-chatbot/pkg/sqlite"
	"sccse-chatbot/pkg/telegram"
)

// @title       SCCSE Chatbot API
// @description Member assistant for SCCSE: intent routing, handbook answers, notes and team recommendations.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SCCSE Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Conversation store
	db, err := pkgSQLite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	chatRepo, err := chatSQLite.New(ctx, db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize chat repository: ", err)
		return
	}
	logger.Infof(ctx, "✅ SQLite store at %s", cfg.SQLite.Path)

	// 4. Notes ledger
	ledger, err := newLedger(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize notes ledger: ", err)
		return
	}

	// 5. Retrieval
	retriever, err := retrievalFactory.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize retrieval backend: ", err)
		return
	}

	// 6. Answer generator
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llmManager, err := llmprovider.NewManagerFromConfig(providers, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM manager: ", err)
		return
	}
	logger.Infof(ctx, "✅ LLM manager ready with %d provider(s)", len(providers))

	// 7. Chat use case
	m := metrics.New()
	chatUseCase := chatUC.New(logger, chatRepo, router.New(logger), ledger, retriever, llmManager, m, chatUC.Config{
		Passkey:          cfg.Chat.Passkey,
		PendingTTL:       cfg.Chat.PendingTTL,
		MemoryPolicy:     cfg.Chat.MemoryPolicy,
		MemoryTokenLimit: cfg.Chat.MemoryTokenLimit,
		MemoryMaxEntries: cfg.Chat.MemoryMaxEntries,
		MemoryMaxUsers:   cfg.Chat.MemoryMaxUsers,
		MemoryTTL:        cfg.Chat.MemoryTTL,
		Skills: skill.Map{
			Tech:   cfg.Skills.Tech,
			Design: cfg.Skills.Design,
			PR:     cfg.Skills.PR,
		},
		SummaryThreshold: cfg.Chat.SummaryThreshold,
		SummaryWindow:    cfg.Chat.SummaryWindow,
		RetrieveTopK:     cfg.Chat.RetrieveTopK,
		RetrieveTimeout:  cfg.Chat.RetrieveTimeout,
		MaxPassageChars:  cfg.Chat.MaxPassageChars,
		Temperature:      cfg.LLM.Temperature,
		MaxTokens:        cfg.LLM.MaxTokens,
	})
	if cfg.Chat.Passkey == "" {
		logger.Warn(ctx, "chat.passkey is empty: note saving and deletion can never be confirmed")
	}

	// 8. Telegram channel (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUseCase, bot)
		registerTelegramWebhook(ctx, logger, bot, cfg.Telegram.WebhookURL)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 9. Test endpoints outside production
	var testHandler test.Handler
	if cfg.Environment.Name != config.EnvironmentProduction {
		testHandler = test.New(logger, chatUseCase)
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, m, middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
			AllowedOrigins:  cfg.CORS.AllowedOrigins,
		}),
		Metrics:         m,
		DB:              db,
		ChatUseCase:     chatUseCase,
		TelegramHandler: telegramHandler,
		TestHandler:     testHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newLedger builds the notes backend named by notes.backend.
func newLedger(ctx context.Context, cfg *config.Config, logger log.Logger) (notes.Ledger, error) {
	switch cfg.Notes.Backend {
	case notes.BackendMemos:
		if cfg.Memos.AccessToken == "" {
			return nil, fmt.Errorf("notes.backend is memos but MEMOS_ACCESS_TOKEN is missing")
		}
		client := notesMemos.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken)
		logger.Infof(ctx, "✅ Notes ledger on Memos %s (tag #%s)", cfg.Memos.URL, cfg.Notes.Tag)
		return notesMemos.New(client, cfg.Notes.Tag, logger), nil
	case notes.BackendFile, "":
		ledger, err := notesFile.New(cfg.Notes.Path, logger)
		if err != nil {
			return nil, err
		}
		logger.Infof(ctx, "✅ Notes ledger at %s", cfg.Notes.Path)
		return ledger, nil
	default:
		return nil, fmt.Errorf("unknown notes.backend %q", cfg.Notes.Backend)
	}
}

// registerTelegramWebhook points Telegram at this service: the configured URL,
// or the local ngrok tunnel when none is set.
func registerTelegramWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, webhookURL string) {
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, ngrokAPIBase, ngrokAttempts, ngrokRetryInterval)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}

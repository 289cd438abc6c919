package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"sccse-chatbot/internal/chat"
	tgDelivery "sccse-chatbot/internal/chat/delivery/telegram"
	"sccse-chatbot/internal/middleware"
	"sccse-chatbot/internal/test"
	"sccse-chatbot/pkg/log"
	"sccse-chatbot/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	metrics     *metrics.Metrics

	// Storage shared by the chat and user domains
	db *sql.DB

	// Chat domain
	chatUC          chat.UseCase
	telegramHandler tgDelivery.Handler

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	Metrics     *metrics.Metrics
	DB          *sql.DB

	ChatUseCase     chat.UseCase
	TelegramHandler tgDelivery.Handler // optional

	TestHandler test.Handler // optional
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		metrics:         cfg.Metrics,
		db:              cfg.DB,
		chatUC:          cfg.ChatUseCase,
		telegramHandler: cfg.TelegramHandler,
		testHandler:     cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}

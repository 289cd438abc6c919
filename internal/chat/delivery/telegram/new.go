package telegram

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"sccse-chatbot/internal/chat"
	pkgLog "sccse-chatbot/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until every message accepted so far has been answered.
	Wait()
}

// Sender delivers replies to a Telegram chat. *pkg/telegram.Bot implements it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

type handler struct {
	l        pkgLog.Logger
	uc       chat.UseCase
	bot      Sender
	inflight sync.WaitGroup
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot Sender) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}

package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"sccse-chatbot/internal/chat"
	"sccse-chatbot/internal/model"
	pkgResponse "sccse-chatbot/pkg/response"
	pkgTelegram "sccse-chatbot/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and answers in the background, since the
// answer path may take longer than Telegram waits for a webhook response.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "chat.delivery.telegram.HandleWebhook: parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, ...)
	if update.Message == nil || update.Message.Text == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}
	if update.Message.Chat == nil {
		h.l.Warnf(ctx, "chat.delivery.telegram.HandleWebhook: update %d: %v", update.UpdateID, errMissingChat)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "chat.delivery.telegram.processMessage: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, replyFailure)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) Wait() {
	h.inflight.Wait()
}

// processMessage answers one text message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)

	switch commandName(text) {
	case commandStart:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, replyWelcome, pkgTelegram.ParseModeMarkdown)
	case commandHelp:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, replyHelp, pkgTelegram.ParseModeMarkdown)
	}

	output, err := h.uc.Chat(ctx, scopeOf(msg), chat.ChatInput{Message: text})
	if err != nil {
		return fmt.Errorf("uc.Chat: %w", err)
	}

	// Replies are plain text: handbook passages may carry Markdown control characters.
	return h.bot.SendMessage(ctx, msg.Chat.ID, output.Reply)
}

// scopeOf keys the conversation by chat, so a group shares one history.
func scopeOf(msg *pkgTelegram.Message) model.Scope {
	name := ""
	if msg.From != nil {
		name = strings.TrimSpace(msg.From.FirstName + " " + msg.From.LastName)
	}
	return model.NewScope(fmt.Sprintf("%s%d", scopePrefix, msg.Chat.ID), name)
}

// commandName strips arguments and the "@botname" suffix from a command.
func commandName(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd)
}

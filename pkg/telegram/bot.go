package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("%s/bot%s", DefaultAPIURL, token),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the bot endpoint, token included. Used by tests.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) error {
	var apiResp APIResponse
	if err := b.call(ctx, "setWebhook", setWebhookRequest{URL: webhookURL}, &apiResp); err != nil {
		return fmt.Errorf("telegram.SetWebhook: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram.SetWebhook: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
// Texts longer than MaxMessageLength are split over several messages.
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	for _, part := range splitMessage(text, MaxMessageLength) {
		payload := SendMessageRequest{
			ChatID:    chatID,
			Text:      part,
			ParseMode: parseMode,
		}
		if err := b.call(ctx, "sendMessage", payload, nil); err != nil {
			return fmt.Errorf("telegram.SendMessage: %w", err)
		}
	}
	return nil
}

// call posts payload to method. out may be nil; non-200 answers are errors
// unless out is set, in which case the body is decoded so callers can read
// the API description.
func (b *Bot) call(ctx context.Context, method string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response (status %d): %w", method, resp.StatusCode, err)
		}
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	return nil
}

// splitMessage cuts text into chunks of at most limit runes, preferring
// line breaks.
func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var parts []string
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > limit/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}

package telegram

import "time"

const (
	DefaultAPIURL  = "https://api.telegram.org"
	DefaultTimeout = 15 * time.Second

	// MaxMessageLength is the Bot API limit for one text message.
	MaxMessageLength = 4096

	ParseModeMarkdown = "Markdown"
)

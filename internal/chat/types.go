package chat

import (
	"sccse-chatbot/internal/model"
	"sccse-chatbot/internal/router"
)

// ChatInput is the input of Chat. The user is carried by model.Scope.
type ChatInput struct {
	Message string
}

// ChatOutput is the reply of Chat.
type ChatOutput struct {
	Reply  string
	Intent router.Intent
}

// HistoryInput is the input of History.
type HistoryInput struct {
	Limit int
}

// HistoryOutput lists turns oldest first.
type HistoryOutput struct {
	Turns   []model.Turn
	Summary string
}

// PreviewInput is the input of Preview.
type PreviewInput struct {
	Message string
}

// PreviewOutput reports how a message would be routed.
type PreviewOutput struct {
	Intent     router.Intent
	Candidates []router.Intent
	OffTopic   bool
	Pending    string
}

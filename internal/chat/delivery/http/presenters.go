package http

import (
	"strings"

	"sccse-chatbot/internal/chat"
	"sccse-chatbot/internal/model"
	"sccse-chatbot/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	UserID  string `json:"user_id"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errMessageMissing
	}
	return nil
}

func (r chatReq) toScope() model.Scope {
	return model.NewScope(r.UserID, r.Name)
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{Message: r.Message}
}

// ---

type historyReq struct {
	UserID string `form:"user_id"`
	Limit  int    `form:"limit"`
}

func (r historyReq) validate() error {
	if r.Limit < 0 || r.Limit > chat.MaxHistoryLimit {
		return errInvalidLimit
	}
	return nil
}

func (r historyReq) toScope() model.Scope {
	return model.NewScope(r.UserID, "")
}

func (r historyReq) toInput() chat.HistoryInput {
	return chat.HistoryInput{Limit: r.Limit}
}

// --- Response DTOs ---

type chatResp struct {
	Reply  string `json:"reply"`
	Intent string `json:"intent"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Reply:  out.Reply,
		Intent: string(out.Intent),
	}
}

type turnResp struct {
	Role      string            `json:"role"`
	Message   string            `json:"message"`
	Timestamp response.DateTime `json:"timestamp" swaggertype:"string"`
}

type historyResp struct {
	UserID  string     `json:"user_id"`
	Turns   []turnResp `json:"turns"`
	Summary string     `json:"summary,omitempty"`
}

func (h *handler) newHistoryResp(sc model.Scope, out chat.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnResp{
			Role:      t.Role,
			Message:   t.Text,
			Timestamp: response.DateTime(t.CreatedAt),
		}
	}
	return historyResp{
		UserID:  sc.UserID,
		Turns:   turns,
		Summary: out.Summary,
	}
}

package llmprovider

import (
	"context"

	"sccse-chatbot/pkg/gemini"
	"sccse-chatbot/pkg/groq"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.Client
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

// CompatibleAdapter adapts pkg/groq to llmprovider.Provider. It serves every
// OpenAI-compatible vendor; name is the configured provider name.
type CompatibleAdapter struct {
	name   string
	client groq.IGroq
}

// NewCompatibleAdapter creates a new adapter for an OpenAI-compatible client
func NewCompatibleAdapter(name string, client groq.IGroq) *CompatibleAdapter {
	return &CompatibleAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *CompatibleAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		Messages:    make([]groq.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// System instruction goes first as a "system" message.
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		groqReq.Messages = append(groqReq.Messages, groq.Message{
			Role:    groq.RoleSystem,
			Content: req.SystemInstruction.text(),
		})
	}
	for _, msg := range req.Messages {
		groqReq.Messages = append(groqReq.Messages, groq.Message{Role: msg.Role, Content: msg.text()})
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant},
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if out.ModelName == "" {
		out.ModelName = a.client.Model()
	}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		out.Content.Parts = []Part{{Text: resp.Choices[0].Message.Content}}
	}
	return out, nil
}

// Name returns the provider name
func (a *CompatibleAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *CompatibleAdapter) Model() string {
	return a.client.Model()
}

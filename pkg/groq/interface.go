package groq

import "context"

// IGroq is a chat-completions client for any OpenAI-compatible endpoint.
// Implementations are safe for concurrent use.
type IGroq interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IGroq, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  cfg.HTTPClient,
	}, nil
}

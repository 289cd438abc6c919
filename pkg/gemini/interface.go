package gemini

import "context"

// Client generates text with a single Gemini model. Safe for concurrent use.
type Client interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg and returns a REST-backed Client.
func New(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}

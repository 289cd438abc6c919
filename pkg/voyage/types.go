package voyage

const (
	DefaultBaseURL = "https://api.voyageai.com/v1"
	DefaultModel   = "voyage-3" // 1024 dimensions

	InputTypeQuery    = "query"
	InputTypeDocument = "document"
)

// EmbedRequest is the request body for the embeddings API.
type EmbedRequest struct {
	Input     []string `json:"input"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type,omitempty"`
}

// EmbedResponse is the response from the embeddings API.
type EmbedResponse struct {
	Object string          `json:"object"` // "list"
	Data   []EmbeddingData `json:"data"`
	Model  string          `json:"model"`
	Usage  UsageInfo       `json:"usage"`
}

// EmbeddingData contains a single embedding vector.
type EmbeddingData struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"` // Position in input array
}

// UsageInfo contains token usage statistics.
type UsageInfo struct {
	TotalTokens int `json:"total_tokens"`
}

// ErrorResponse is the error body returned by the Voyage API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

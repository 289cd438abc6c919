package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client implements IGroq
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// Model returns the model being used
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a chat completion request
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("groq: request has no messages")
	}

	payload := *req
	if payload.Model == "" {
		payload.Model = c.model
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("groq: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("groq: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("groq: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("groq: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			return nil, fmt.Errorf("groq: API error %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("groq: API error %d: %s", resp.StatusCode, errResp.Error.Message)
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("groq: failed to parse response: %w", err)
	}

	return &result, nil
}

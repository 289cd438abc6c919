package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Qdrant client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithAPIKey sets the key sent in the api-key header (Qdrant Cloud).
func (c *Client) WithAPIKey(apiKey string) *Client {
	c.apiKey = apiKey
	return c
}

// CollectionExists reports whether the named collection exists.
func (c *Client) CollectionExists(ctx context.Context, name string) (bool, error) {
	var out struct {
		Result struct {
			Exists bool `json:"exists"`
		} `json:"result"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/collections/%s/exists", name), nil, &out); err != nil {
		return false, err
	}
	return out.Result.Exists, nil
}

// CreateCollection creates a new collection with the given configuration.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/collections/%s", req.Name), req, nil)
}

// UpsertPoints inserts or updates points (vectors) in a collection.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/collections/%s/points?wait=true", collectionName), req, nil)
}

// SearchPoints performs semantic search in a collection.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/collections/%s/points/search", collectionName), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeletePoints deletes points by IDs.
func (c *Client) DeletePoints(ctx context.Context, collectionName string, ids []string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/collections/%s/points/delete", collectionName), DeletePointsRequest{Points: ids}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("qdrant API error: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

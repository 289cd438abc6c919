package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the HTTP wrapper for the Memos REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Memos HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateMemo creates a new memo via POST /api/v1/memos.
func (c *Client) CreateMemo(ctx context.Context, req CreateMemoRequest) (*Memo, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create memo request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/memos", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create memo request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var memo Memo
	if err := c.do(httpReq, "create", &memo); err != nil {
		return nil, err
	}
	return &memo, nil
}

// ListMemos returns one page of memos matching filter (a CEL expression, may be empty).
func (c *Client) ListMemos(ctx context.Context, filter string, pageSize int, pageToken string) ([]Memo, string, error) {
	q := url.Values{}
	q.Set("pageSize", fmt.Sprintf("%d", pageSize))
	if filter != "" {
		q.Set("filter", filter)
	}
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/memos?"+q.Encode(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build list memos request: %w", err)
	}

	var listResp struct {
		Memos         []Memo `json:"memos"`
		NextPageToken string `json:"nextPageToken"`
	}
	if err := c.do(httpReq, "list", &listResp); err != nil {
		return nil, "", err
	}
	return listResp.Memos, listResp.NextPageToken, nil
}

// DeleteMemo deletes a memo by resource name ("memos/<uid>") or bare uid.
func (c *Client) DeleteMemo(ctx context.Context, name string) error {
	if !strings.HasPrefix(name, "memos/") {
		name = "memos/" + name
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/v1/"+name, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete memo request: %w", err)
	}
	return c.do(httpReq, "delete", nil)
}

func (c *Client) do(req *http.Request, op string, out any) error {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call memos %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("memos API %s error %d: %s", op, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode memos %s response: %w", op, err)
	}
	return nil
}

// CreateMemoRequest is the body for POST /api/v1/memos.
type CreateMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// Memo is the Memos API memo object.
type Memo struct {
	Name       string `json:"name"`
	UID        string `json:"uid"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
	CreateTime string `json:"createTime"`
}

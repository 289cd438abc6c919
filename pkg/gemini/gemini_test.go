package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sccse-chatbot/pkg/gemini"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) gemini.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestGenerateContent_Success(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/"+gemini.DefaultModel+":generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if _, ok := body["system_instruction"]; !ok {
			t.Errorf("system_instruction missing from request")
		}
		contents := body["contents"].([]any)
		if role := contents[1].(map[string]any)["role"]; role != "model" {
			t.Errorf("assistant role should map to model, got %v", role)
		}

		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Hello there"}]}}],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 2, "totalTokenCount": 9}
		}`))
	})

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "be brief"}}},
		Messages: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: "hi"}}},
			{Role: "assistant", Parts: []gemini.Part{{Text: "hello"}}},
			{Role: "user", Parts: []gemini.Part{{Text: "again"}}},
		},
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if got := resp.Content.Parts[0].Text; got != "Hello there" {
		t.Errorf("text = %q, want %q", got, "Hello there")
	}
	if resp.Usage.TotalTokens != 9 {
		t.Errorf("total tokens = %d, want 9", resp.Usage.TotalTokens)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded"}}`))
	})

	_, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if len(resp.Content.Parts) != 0 {
		t.Errorf("expected no parts, got %d", len(resp.Content.Parts))
	}
	if resp.Usage == nil {
		t.Error("usage should never be nil")
	}
}

func TestGenerateContent_EmptyRequest(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be called")
	})
	if _, err := client.GenerateContent(context.Background(), &gemini.Request{}); err == nil {
		t.Fatal("expected error for empty request")
	}
}

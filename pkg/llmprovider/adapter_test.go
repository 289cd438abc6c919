package llmprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sccse-chatbot/pkg/groq"
)

func TestCompatibleAdapter_SystemInstructionFirst(t *testing.T) {
	var got groq.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"model":"llama-3.1-8b-instant","choices":[{"message":{"role":"assistant","content":"ok"}}],"usage":{"prompt_tokens":3,"completion_tokens":1,"total_tokens":4}}`))
	}))
	defer ts.Close()

	client, err := groq.New(groq.Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("groq.New() error = %v", err)
	}
	adapter := NewCompatibleAdapter(ProviderGroq, client)

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Message{Parts: []Part{{Text: "rules"}}},
		Messages:          []Message{{Role: RoleUser, Parts: []Part{{Text: "question"}}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}

	if len(got.Messages) != 2 || got.Messages[0].Role != groq.RoleSystem || got.Messages[0].Content != "rules" {
		t.Errorf("system message not sent first: %+v", got.Messages)
	}
	if resp.Text() != "ok" {
		t.Errorf("Text() = %q, want ok", resp.Text())
	}
	if resp.ProviderName != ProviderGroq || resp.Usage.TotalTokens != 4 {
		t.Errorf("unexpected response metadata: %+v", resp)
	}
}

func TestCompatibleAdapter_NoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	client, _ := groq.New(groq.Config{APIKey: "k", BaseURL: ts.URL})
	adapter := NewCompatibleAdapter(ProviderDeepSeek, client)

	resp, err := adapter.GenerateContent(context.Background(), UserPrompt("hi", 0))
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if resp.Text() != "" {
		t.Errorf("expected empty text, got %q", resp.Text())
	}
	if resp.ModelName != groq.DefaultModel {
		t.Errorf("ModelName = %q, want client model", resp.ModelName)
	}
}

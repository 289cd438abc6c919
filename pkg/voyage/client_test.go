package voyage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sccse-chatbot/pkg/voyage"
)

func TestVoyageClient(t *testing.T) {
	var lastReq voyage.EmbedRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"invalid key"}`))
			return
		}

		if err := json.NewDecoder(r.Body).Decode(&lastReq); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if len(lastReq.Input) > 0 && lastReq.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// Answer out of order to check that Index is honoured.
		w.WriteHeader(http.StatusOK)
		if len(lastReq.Input) == 2 {
			w.Write([]byte(`{"data":[
				{"embedding":[0.4,0.5],"index":1},
				{"embedding":[0.1,0.2],"index":0}
			]}`))
			return
		}
		w.Write([]byte(`{"data":[{"embedding":[0.1,0.2,0.3],"index":0}]}`))
	}))
	defer ts.Close()

	client, _ := voyage.New("test-voyage-key")
	client.WithBaseURL(ts.URL).WithModel("custom-model")

	t.Run("Query", func(t *testing.T) {
		emb, err := client.EmbedQuery(context.Background(), "Hello world")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != 3 || emb[0] != 0.1 {
			t.Fatalf("unexpected embedding: %v", emb)
		}
		if lastReq.InputType != voyage.InputTypeQuery || lastReq.Model != "custom-model" {
			t.Errorf("unexpected request: %+v", lastReq)
		}
	})

	t.Run("Documents keep order", func(t *testing.T) {
		emb, err := client.EmbedDocuments(context.Background(), []string{"a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if emb[0][0] != 0.1 || emb[1][0] != 0.4 {
			t.Errorf("embeddings out of order: %v", emb)
		}
		if lastReq.InputType != voyage.InputTypeDocument {
			t.Errorf("expected document input type, got %q", lastReq.InputType)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.EmbedQuery(context.Background(), "cause_500"); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := voyage.New("bad-key")
		badClient.WithBaseURL(ts.URL)
		_, err := badClient.EmbedQuery(context.Background(), "Hello world")
		if err == nil || !strings.Contains(err.Error(), "401") {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		if _, err := client.EmbedDocuments(context.Background(), nil); err == nil {
			t.Fatal("expected error for empty input")
		}
	})

	t.Run("Missing key", func(t *testing.T) {
		if _, err := voyage.New(""); err == nil {
			t.Fatal("expected error for missing key")
		}
	})
}

package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sccse-chatbot/internal/chat"
	"sccse-chatbot/internal/model"
	"sccse-chatbot/internal/router"
	pkgLog "sccse-chatbot/pkg/log"
)

type mockChatUseCase struct {
	chat.UseCase
	gotScope model.Scope
}

func (m *mockChatUseCase) Preview(_ context.Context, sc model.Scope, in chat.PreviewInput) (chat.PreviewOutput, error) {
	m.gotScope = sc
	if strings.TrimSpace(in.Message) == "" {
		return chat.PreviewOutput{}, chat.ErrEmptyMessage
	}
	return chat.PreviewOutput{
		Intent:     router.IntentEvents,
		Candidates: []router.Intent{router.IntentEvents, router.IntentAnswer},
		Pending:    "none",
	}, nil
}

func setup() (*gin.Engine, *mockChatUseCase) {
	gin.SetMode(gin.TestMode)
	uc := &mockChatUseCase{}
	h := New(pkgLog.NewNop(), uc)
	r := gin.New()
	r.POST("/test/classify", h.HandleClassify)
	r.GET("/test/health", h.HandleHealthCheck)
	return r, uc
}

func TestHandleClassify(t *testing.T) {
	r, uc := setup()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test/classify",
		strings.NewReader(`{"text":"any upcoming events?","user_id":"u1"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "EVENTS", resp.Intent)
	assert.Equal(t, []string{"EVENTS", "ANSWER"}, resp.Candidates)
	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, "u1", uc.gotScope.UserID)
}

func TestHandleClassify_BadRequest(t *testing.T) {
	r, _ := setup()

	for _, body := range []string{`{}`, `{"text":"   "}`} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test/classify", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestHandleHealthCheck(t *testing.T) {
	r, _ := setup()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"otter-agent/assistant"
	"otter-agent/config"
	"otter-agent/sources"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubSource struct {
	text  string
	label string
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Lookup(ctx context.Context, query string) sources.Result {
	return sources.Result{Text: s.text, Label: s.label}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SourceTimeout:   100 * time.Millisecond,
		RaceDeadline:    200 * time.Millisecond,
		ReplyCharLimit:  240,
		PrimaryKeyword:  "otter",
		DomainKeywords:  []string{"otter", "otters"},
		RefusalMessages: []string{"refusal message"},
		FallbackMessage: "fallback message",
	}
	logger, _ := zap.NewDevelopment()
	src := &stubSource{text: "Sea otters eat sea urchins and crabs.", label: "DuckDuckGo"}

	a, err := assistant.New(cfg, assistant.DefaultRuleTable(), []sources.Source{src}, logger)
	if err != nil {
		t.Fatalf("assistant.New() returned error: %v", err)
	}

	handler := NewWebhookHandler(a, logger)
	router := gin.New()
	router.GET("/", handler.Health)
	router.GET("/webhook", handler.Ready)
	router.POST("/webhook", handler.Answer)
	return router
}

func postWebhook(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookReady(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /webhook status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Webhook ready") {
		t.Errorf("GET /webhook body = %q, want readiness status", w.Body.String())
	}
}

func TestWebhookAnswer(t *testing.T) {
	router := newTestRouter(t)

	w := postWebhook(t, router, `{"message": "What do otters eat?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /webhook status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Reply           string `json:"reply"`
		HTML            string `json:"html"`
		FulfillmentText string `json:"fulfillmentText"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Reply, "sea urchins") {
		t.Errorf("reply = %q, want the source answer", resp.Reply)
	}
	if resp.FulfillmentText != resp.Reply {
		t.Errorf("fulfillmentText = %q, want it to mirror reply %q", resp.FulfillmentText, resp.Reply)
	}
	if !strings.Contains(resp.HTML, "<p>") {
		t.Errorf("html = %q, want a rendered fragment", resp.HTML)
	}
}

func TestWebhookDialogflowPayload(t *testing.T) {
	router := newTestRouter(t)

	w := postWebhook(t, router, `{"queryResult": {"queryText": "How can I help otters?"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /webhook status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "rescue centers") {
		t.Errorf("body = %q, want the canned help answer", w.Body.String())
	}
}

func TestWebhookBadRequests(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed_json", body: `{"message": `},
		{name: "missing_question", body: `{}`},
		{name: "blank_question", body: `{"message": "   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postWebhook(t, router, tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/souravmalhi93-eng/Vaani-backend/internal/bot"
	"github.com/souravmalhi93-eng/Vaani-backend/internal/llm"
)

// recordingSender captures outbound sends for end-to-end tests.
type recordingSender struct {
	chatIDs []int64
	texts   []string
}

func (r *recordingSender) SendMessage(_ context.Context, chatID int64, text string) error {
	r.chatIDs = append(r.chatIDs, chatID)
	r.texts = append(r.texts, text)
	return nil
}

// cannedProvider implements llm.Provider with a fixed reply.
type cannedProvider struct{ content string }

func (cannedProvider) Name() string { return "canned" }

func (c cannedProvider) Complete(context.Context, llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{Content: c.content}, nil
}

func newTestServer(sender bot.Sender, providers []llm.Provider) *Server {
	router := llm.NewRouter(providers, zerolog.Nop())
	handler := bot.NewHandler(router, sender, zerolog.Nop())
	return New(Config{Port: 0}, handler, zerolog.Nop())
}

func TestRootHealthString(t *testing.T) {
	srv := newTestServer(&recordingSender{}, nil)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != healthMessage {
		t.Errorf("expected fixed health string, got %q", w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&recordingSender{}, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestWebhookEndToEnd(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(sender, []llm.Provider{cannedProvider{content: "hi there"}})

	body := `{"message":{"chat":{"id":42},"text":"hello"}}`
	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(sender.chatIDs) != 1 || sender.chatIDs[0] != 42 {
		t.Fatalf("expected send to chat 42, got %v", sender.chatIDs)
	}
	if sender.texts[0] != "hi there" {
		t.Errorf("expected relayed reply 'hi there', got %q", sender.texts[0])
	}
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	router := llm.NewRouter(nil, zerolog.Nop())
	handler := bot.NewHandler(router, &recordingSender{}, zerolog.Nop())
	srv := New(Config{Port: 0}, handler, logger)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	line := buf.String()
	if !strings.Contains(line, `"path":"/healthz"`) {
		t.Errorf("expected request path in log, got %q", line)
	}
	if !strings.Contains(line, `"status":200`) {
		t.Errorf("expected status in log, got %q", line)
	}
	if !strings.Contains(line, `"method":"GET"`) {
		t.Errorf("expected method in log, got %q", line)
	}
}

func TestWebhookIgnorableUpdate(t *testing.T) {
	sender := &recordingSender{}
	srv := newTestServer(sender, []llm.Provider{cannedProvider{content: "unused"}})

	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(`{"update_id": 5}`))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(sender.chatIDs) != 0 {
		t.Errorf("expected no outbound sends, got %v", sender.chatIDs)
	}
}

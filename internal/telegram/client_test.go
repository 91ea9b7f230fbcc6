package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotPayload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Write([]byte(`{"ok": true, "result": {}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "123:abc")
	if err := c.SendMessage(context.Background(), 42, "hi there"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/bot123:abc/sendMessage" {
		t.Errorf("expected sendMessage path with token, got %q", gotPath)
	}
	if gotPayload["chat_id"] != float64(42) {
		t.Errorf("expected chat_id 42, got %v", gotPayload["chat_id"])
	}
	if gotPayload["text"] != "hi there" {
		t.Errorf("expected text 'hi there', got %v", gotPayload["text"])
	}
}

func TestSendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok": false, "description": "Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "123:abc")
	err := c.SendMessage(context.Background(), 42, "hi")
	if err == nil {
		t.Fatal("expected error for ok:false response")
	}
}

func TestSendMessageOKFalseWith200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "description": "blocked by user"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "123:abc")
	if err := c.SendMessage(context.Background(), 42, "hi"); err == nil {
		t.Fatal("expected error when ok is false even with status 200")
	}
}

func TestGetWebhookInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bot123:abc/getWebhookInfo" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"ok": true, "result": {"url": "https://example.com/webhook", "pending_update_count": 3}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "123:abc")
	info, err := c.GetWebhookInfo(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.URL != "https://example.com/webhook" {
		t.Errorf("expected webhook url, got %q", info.URL)
	}
	if info.PendingUpdates != 3 {
		t.Errorf("expected 3 pending updates, got %d", info.PendingUpdates)
	}
}

func TestSetWebhook(t *testing.T) {
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Write([]byte(`{"ok": true, "result": true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "123:abc")
	if err := c.SetWebhook(context.Background(), "https://example.com/webhook"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPayload["url"] != "https://example.com/webhook" {
		t.Errorf("expected webhook url in payload, got %v", gotPayload["url"])
	}
}

func TestUpdateEnvelopeDecoding(t *testing.T) {
	raw := []byte(`{"update_id": 7, "message": {"message_id": 1, "chat": {"id": 42}, "text": "hello"}}`)
	var u Update
	if err := json.Unmarshal(raw, &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.Message == nil || u.Message.Chat.ID != 42 || u.Message.Text != "hello" {
		t.Errorf("unexpected envelope: %+v", u)
	}

	// Non-message updates decode with a nil Message.
	raw = []byte(`{"update_id": 8, "edited_channel_post": {"id": 9}}`)
	u = Update{}
	if err := json.Unmarshal(raw, &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.Message != nil {
		t.Errorf("expected nil message for non-message update, got %+v", u.Message)
	}
}

package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestRouterNoProvidersReturnsNotConfigured(t *testing.T) {
	r := NewRouter(nil, zerolog.Nop())

	if r.Configured() {
		t.Error("expected Configured() to be false")
	}
	if got := r.Reply(context.Background(), "hello"); got != ReplyNotConfigured {
		t.Errorf("expected not-configured reply, got %q", got)
	}
}

func TestRouterReturnsPrimaryResponse(t *testing.T) {
	primary := NewMockProvider("primary")
	primary.Response.Content = "primary says hi"
	fallback := NewMockProvider("fallback")

	r := NewRouter([]Provider{primary, fallback}, zerolog.Nop())

	got := r.Reply(context.Background(), "hello")
	if got != "primary says hi" {
		t.Errorf("expected primary response, got %q", got)
	}
	if primary.CallCount() != 1 {
		t.Errorf("expected 1 primary call, got %d", primary.CallCount())
	}
	if fallback.CallCount() != 0 {
		t.Errorf("expected no fallback calls, got %d", fallback.CallCount())
	}
}

func TestRouterFallsBackOncePreservingInput(t *testing.T) {
	primary := NewMockProvider("primary")
	primary.Err = errors.New("upstream 500")
	fallback := NewMockProvider("fallback")
	fallback.Response.Content = "fallback reply"

	r := NewRouter([]Provider{primary, fallback}, zerolog.Nop())

	got := r.Reply(context.Background(), "the question")
	if got != "fallback reply" {
		t.Errorf("expected fallback reply, got %q", got)
	}
	if fallback.CallCount() != 1 {
		t.Fatalf("expected exactly 1 fallback call, got %d", fallback.CallCount())
	}

	msgs := fallback.Calls[0].Messages
	if len(msgs) != 1 || msgs[0].Role != RoleUser || msgs[0].Content != "the question" {
		t.Errorf("fallback did not receive the same input: %+v", msgs)
	}
}

func TestRouterBothFailReturnsApology(t *testing.T) {
	primary := NewMockProvider("primary")
	primary.Err = errors.New("timeout")
	fallback := NewMockProvider("fallback")
	fallback.Err = errors.New("also down")

	r := NewRouter([]Provider{primary, fallback}, zerolog.Nop())

	if got := r.Reply(context.Background(), "hello"); got != ReplyApology {
		t.Errorf("expected apology, got %q", got)
	}
	if primary.CallCount() != 1 || fallback.CallCount() != 1 {
		t.Errorf("expected one call each, got %d and %d", primary.CallCount(), fallback.CallCount())
	}
}

func TestRouterPrimaryOnlyFailureReturnsApology(t *testing.T) {
	primary := NewMockProvider("primary")
	primary.Err = errors.New("down")

	r := NewRouter([]Provider{primary}, zerolog.Nop())

	if got := r.Reply(context.Background(), "hello"); got != ReplyApology {
		t.Errorf("expected apology with no fallback configured, got %q", got)
	}
}

func TestRouterSendsSingleUserMessage(t *testing.T) {
	primary := NewMockProvider("primary")
	r := NewRouter([]Provider{primary}, zerolog.Nop())

	r.Reply(context.Background(), "what's the weather?")

	msgs := primary.Calls[0].Messages
	if len(msgs) != 1 {
		t.Fatalf("expected a single message, got %d", len(msgs))
	}
	if msgs[0].Role != RoleUser {
		t.Errorf("expected user role, got %q", msgs[0].Role)
	}
	if msgs[0].Content != "what's the weather?" {
		t.Errorf("expected input text, got %q", msgs[0].Content)
	}
}

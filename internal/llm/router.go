package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Fixed replies used when no provider can produce text. They are the only
// failure signals that cross the router boundary; callers never see errors.
const (
	// ReplyNotConfigured is sent when no provider credential was present
	// at startup.
	ReplyNotConfigured = "I'm not connected to a language model yet. Ask my operator to configure a provider."

	// ReplyApology is sent when every configured provider failed.
	ReplyApology = "Sorry, I'm temporarily unable to respond. Please try again in a little while."
)

// DefaultCallTimeout bounds a single provider call. Generation latency is
// unbounded and unpredictable, so the budget is generous.
const DefaultCallTimeout = 2 * time.Minute

// Router selects among the configured providers and folds every failure
// into a plain-text reply. At most two providers take part: the first is
// the primary, the second the fallback tried once after a primary failure.
type Router struct {
	primary  Provider
	fallback Provider
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewRouter creates a Router over the active providers, in order.
// Providers beyond the first two are ignored.
func NewRouter(providers []Provider, logger zerolog.Logger) *Router {
	r := &Router{
		timeout: DefaultCallTimeout,
		logger:  logger,
	}
	if len(providers) > 0 {
		r.primary = providers[0]
	}
	if len(providers) > 1 {
		r.fallback = providers[1]
	}
	return r
}

// Configured reports whether at least one provider is active.
func (r *Router) Configured() bool {
	return r.primary != nil
}

// Reply produces the response text for one inbound message. It never
// returns an error: provider failures degrade to the fallback provider
// and then to the fixed apology.
func (r *Router) Reply(ctx context.Context, text string) string {
	if r.primary == nil {
		return ReplyNotConfigured
	}

	req := CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: text}},
	}

	reply, err := r.call(ctx, r.primary, req)
	if err == nil {
		return reply
	}
	r.logger.Warn().Err(err).Str("provider", r.primary.Name()).Msg("primary provider failed")

	if r.fallback != nil {
		reply, err = r.call(ctx, r.fallback, req)
		if err == nil {
			return reply
		}
		r.logger.Error().Err(err).Str("provider", r.fallback.Name()).Msg("fallback provider failed")
	}

	return ReplyApology
}

func (r *Router) call(ctx context.Context, p Provider, req CompletionRequest) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := p.Complete(callCtx, req)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

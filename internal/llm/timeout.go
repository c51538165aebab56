package llm

import (
	"context"
	"time"
)

// WithTimeout bounds every chat request with the configured timeout.
// Callers may still pass a shorter deadline of their own.
func WithTimeout(p Provider, d time.Duration) Provider {
	return &timeoutProvider{next: p, timeout: d}
}

type timeoutProvider struct {
	next    Provider
	timeout time.Duration
}

func (t *timeoutProvider) Chat(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Chat(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.next.ModelID()
}

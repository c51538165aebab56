package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// stallProvider blocks until the context is cancelled.
type stallProvider struct{}

func (stallProvider) Chat(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallProvider) ModelID() string { return "stall" }

func TestWithTimeoutCancelsSlowRequests(t *testing.T) {
	p := WithTimeout(stallProvider{}, 10*time.Millisecond)

	_, err := p.Chat(context.Background(), ChatRequest{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestWithTimeoutPassesFastRequestsThrough(t *testing.T) {
	mock := NewMockProvider(MockReply{Text: "hi"})
	p := WithTimeout(mock, time.Second)

	reply, err := p.Chat(context.Background(), ChatRequest{})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply.Text != "hi" {
		t.Fatalf("Text = %q, want %q", reply.Text, "hi")
	}
	if p.ModelID() != mock.ModelID() {
		t.Error("ModelID must delegate to the wrapped provider")
	}
}

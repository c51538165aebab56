package llm

import (
	"context"
	"testing"

	"github.com/Khoiidayy/linguabot/internal/store"
)

type fakeEventRepo struct {
	events []store.LLMRequestEventData
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) LLMStats(_ context.Context) (store.LLMStats, error) {
	return store.LLMStats{}, nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(
		MockReply{Text: "hola", Usage: Usage{InputTokens: 7, OutputTokens: 3, TotalTokens: 10}},
	)
	p := WithLogging(mock, "mock", repo)

	ctx := WithPurpose(context.Background(), "tutor-chat")
	reply, err := p.Chat(ctx, ChatRequest{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Text != "hola" {
		t.Fatalf("reply passed through wrong: %q", reply.Text)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Error("event should be marked successful")
	}
	if ev.Purpose != "tutor-chat" {
		t.Errorf("purpose = %q, want tutor-chat", ev.Purpose)
	}
	if ev.Provider != "mock" {
		t.Errorf("provider = %q, want mock", ev.Provider)
	}
	if ev.InputTokens != 7 || ev.OutputTokens != 3 {
		t.Errorf("tokens = %d/%d, want 7/3", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(
		MockReply{Err: &ErrProviderUnavailable{}},
	)
	p := WithLogging(mock, "mock", repo)

	if _, err := p.Chat(context.Background(), ChatRequest{}); err == nil {
		t.Fatal("expected error to pass through")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("event should be marked failed")
	}
	if ev.ErrorMessage == "" {
		t.Error("failure event should carry the error message")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", ev.Purpose)
	}
}

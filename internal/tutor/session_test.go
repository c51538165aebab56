package tutor

import (
	"context"
	"strings"
	"testing"

	"github.com/Khoiidayy/linguabot/internal/llm"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

const greeting = "Press 1 to select a vocabulary set, press 2 to start practicing."

func TestSessionStart_SendsSeedMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Text: greeting})
	s := NewSession(mock, twoSets())

	reply, err := s.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if reply != greeting {
		t.Fatalf("reply = %q, want the greeting", reply)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if len(req.Messages) != 1 || req.Messages[0].Content != StartMessage {
		t.Fatalf("seed turn = %+v, want a single %q message", req.Messages, StartMessage)
	}
	if req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", req.Temperature)
	}
}

func TestSessionSend_GrowsHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Text: greeting},
		llm.MockReply{Text: "Available sets: Animals, Food. Type the name of the set you want to study."},
	)
	s := NewSession(mock, twoSets())

	if _, err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Send(context.Background(), "1"); err != nil {
		t.Fatalf("send: %v", err)
	}

	// The second request must replay the whole conversation.
	req := mock.Calls[1]
	if len(req.Messages) != 3 {
		t.Fatalf("second request carries %d messages, want 3", len(req.Messages))
	}
	if req.Messages[1].Role != llm.RoleAssistant || req.Messages[1].Content != greeting {
		t.Error("assistant greeting missing from replayed history")
	}
	if req.Messages[2].Content != "1" {
		t.Errorf("last turn = %q, want the user's input", req.Messages[2].Content)
	}

	// Seed message is hidden from callers.
	if h := s.History(); len(h) != 3 {
		t.Errorf("History() length = %d, want 3 (seed excluded)", len(h))
	}
}

func TestSessionSend_RollsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Text: greeting},
		llm.MockReply{Err: &llm.ErrProviderUnavailable{}},
		llm.MockReply{Text: "Correct!"},
	)
	s := NewSession(mock, twoSets())

	if _, err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Send(context.Background(), "gato"); err == nil {
		t.Fatal("expected provider error")
	}

	// Retrying the same turn must not duplicate it in the history.
	if _, err := s.Send(context.Background(), "gato"); err != nil {
		t.Fatalf("retry: %v", err)
	}
	req := mock.Calls[2]
	userTurns := 0
	for _, m := range req.Messages {
		if m.Role == llm.RoleUser && m.Content == "gato" {
			userTurns++
		}
	}
	if userTurns != 1 {
		t.Fatalf("failed turn duplicated: %d copies of the user message", userTurns)
	}
}

// The prompt is fixed at session start; later vocabulary edits must not
// leak into an open conversation.
func TestSessionPromptIsFixedAtStart(t *testing.T) {
	sets := twoSets()
	mock := llm.NewMockProvider(
		llm.MockReply{Text: greeting},
		llm.MockReply{Text: "ok"},
	)
	s := NewSession(mock, sets)

	if _, err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	sets[0].AddWord(vocab.NewWord("pez", "fish"))

	if _, err := s.Send(context.Background(), "2"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if strings.Contains(mock.Calls[1].System, "pez") {
		t.Error("vocabulary edit leaked into an open session's prompt")
	}
}

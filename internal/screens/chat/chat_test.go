package chat

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Khoiidayy/linguabot/internal/llm"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

const greeting = "Press 1 to select a vocabulary set, press 2 to start practicing."

func testUser() *vocab.User {
	u := vocab.NewUser("amy", "pw")
	set := vocab.NewSet("Animals")
	set.AddWord(vocab.NewWord("gato", "cat"))
	u.AddSet(set)
	return &u
}

func TestNilProviderShowsHint(t *testing.T) {
	s := New(testUser(), nil)

	if cmd := s.Init(); cmd != nil {
		t.Error("no work should start without a provider")
	}
	if !strings.Contains(s.View(80, 24), "API key") {
		t.Error("view should explain the missing API key")
	}
}

func TestGreetingAppearsInTranscript(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Text: greeting})
	s := New(testUser(), mock)
	s.waiting = true
	s.starting = true

	msg := s.startCmd()()
	s.Update(msg)

	if s.waiting {
		t.Error("reply should clear the waiting flag")
	}
	if len(s.messages) != 1 || s.messages[0].Text != greeting {
		t.Fatalf("transcript = %+v, want the greeting", s.messages)
	}
	if !strings.Contains(s.View(80, 24), "Press 1") {
		t.Error("greeting should render in the transcript")
	}
}

func TestStartFailureBecomesTutorTurn(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Err: &llm.ErrProviderUnavailable{}})
	s := New(testUser(), mock)
	s.waiting = true
	s.starting = true

	msg := s.startCmd()()
	s.Update(msg)

	if len(s.messages) != 1 {
		t.Fatalf("transcript = %+v, want one entry", s.messages)
	}
	got := s.messages[0]
	if got.Role != vocab.RoleModel || got.Text != startErrText {
		t.Fatalf("entry = %+v, want a tutor turn saying %q", got, startErrText)
	}
}

func TestSendFailureBecomesTutorTurn(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Text: greeting},
		llm.MockReply{Err: &llm.ErrProviderUnavailable{}},
	)
	s := New(testUser(), mock)
	s.waiting = true
	s.starting = true
	s.Update(s.startCmd()())

	// Type a message and submit it.
	s.input.Model.SetValue("1")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submit should produce the send command")
	}
	if !s.waiting {
		t.Fatal("submit should set the waiting flag")
	}
	if len(s.messages) != 2 || s.messages[1].Role != vocab.RoleUser {
		t.Fatalf("user turn missing from transcript: %+v", s.messages)
	}

	s.Update(s.sendCmd("1")())
	if len(s.messages) != 3 {
		t.Fatalf("transcript = %+v, want three entries", s.messages)
	}
	got := s.messages[2]
	if got.Role != vocab.RoleModel || got.Text != sendErrText {
		t.Fatalf("entry = %+v, want a tutor turn saying %q", got, sendErrText)
	}
	if !strings.Contains(s.View(80, 24), sendErrText) {
		t.Error("error turn should render in the transcript")
	}
}

func TestInputIgnoredWhileWaiting(t *testing.T) {
	mock := llm.NewMockProvider()
	s := New(testUser(), mock)
	s.waiting = true

	if cmd := s.submit(); cmd != nil {
		t.Error("submit must be a no-op while a request is in flight")
	}
}

package tutor

import (
	"context"

	"github.com/Khoiidayy/linguabot/internal/llm"
	"github.com/Khoiidayy/linguabot/internal/vocab"
)

const (
	maxReplyTokens = 1024
	temperature    = 0.7
)

// Session is one tutor conversation. The system prompt is built once from
// the vocabulary passed to NewSession; the history grows with each turn.
type Session struct {
	provider llm.Provider
	system   string
	history  []llm.Message
}

// NewSession prepares a session over the given vocabulary.
func NewSession(provider llm.Provider, sets []vocab.VocabSet) *Session {
	return &Session{
		provider: provider,
		system:   BuildSystemPrompt(sets),
	}
}

// Start kicks off the conversation. The model's reply is the greeting that
// opens the session.
func (s *Session) Start(ctx context.Context) (string, error) {
	return s.Send(ctx, StartMessage)
}

// Send appends the user's turn, asks the model for the next turn, and
// appends the reply to the history. On error the user turn is rolled back
// so a failed send can be repeated.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	s.history = append(s.history, llm.Message{Role: llm.RoleUser, Content: text})

	reply, err := s.provider.Chat(llm.WithPurpose(ctx, llm.PurposeTutorChat), llm.ChatRequest{
		System:      s.system,
		Messages:    s.history,
		MaxTokens:   maxReplyTokens,
		Temperature: temperature,
	})
	if err != nil {
		s.history = s.history[:len(s.history)-1]
		return "", err
	}

	s.history = append(s.history, llm.Message{Role: llm.RoleAssistant, Content: reply.Text})
	return reply.Text, nil
}

// History returns the conversation so far, excluding the seed message that
// started the session.
func (s *Session) History() []llm.Message {
	if len(s.history) > 0 && s.history[0].Content == StartMessage {
		return s.history[1:]
	}
	return s.history
}

// Package llm abstracts the remote language model behind a narrow
// text-to-text chat interface. The tutor protocol lives entirely in the
// system prompt; nothing here inspects or validates reply content.
package llm

import "context"

// Provider is the core abstraction for chat-style LLM interaction.
type Provider interface {
	// Chat sends the system prompt plus the full conversation history and
	// returns the model's next turn as plain text.
	Chat(ctx context.Context, req ChatRequest) (*ChatReply, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// ChatRequest describes one conversational turn to send.
type ChatRequest struct {
	// System is the session-scoped system prompt. Fixed for the lifetime of
	// a chat session; later vocabulary edits do not propagate into it.
	System string

	// Messages is the full conversation history, ending with the user turn
	// awaiting a reply.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the reply.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatReply holds the model's output.
type ChatReply struct {
	// Text is the reply content.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

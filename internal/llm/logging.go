package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Khoiidayy/linguabot/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging. name identifies the
// provider ("gemini", "openai", ...) in the recorded events.
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, name: name, eventRepo: repo}
}

func (l *LoggingProvider) Chat(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	reply, err := l.inner.Chat(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if reply != nil {
		data.InputTokens = reply.Usage.InputTokens
		data.OutputTokens = reply.Usage.OutputTokens
		data.Model = reply.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return reply, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

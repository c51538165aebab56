package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// PurposeTutorChat labels requests issued by the tutor chat session, the
// only request source today.
const PurposeTutorChat = "tutor-chat"

// WithPurpose attaches a purpose label to the context. The logging
// decorator records it on each llm_requests event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

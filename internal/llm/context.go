package llm

import "context"

type purposeKey struct{}

// WithPurpose tags the context with the caller's intent for this model
// call ("difficulty-predict", "solve-expression"). Used for logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom extracts the purpose tag, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}

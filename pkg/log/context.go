package log

import "context"

// SetTraceIDToContext stores the request trace id so every log line for the request carries it.
func SetTraceIDToContext(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// GetTraceIDFromContext returns the trace id. Second return is false if not set or empty.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(traceIDKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

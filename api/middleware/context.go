package middleware

import "context"

type contextKey string

const ctxVisitorID contextKey = "visitor_id"

// VisitorIDFromContext returns the visitor token injected by the Visitor
// middleware, or "".
func VisitorIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxVisitorID).(string); ok {
		return v
	}
	return ""
}

// WithVisitorID injects the visitor token into the context.
func WithVisitorID(ctx context.Context, visitorID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxVisitorID, visitorID)
}

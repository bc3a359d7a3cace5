// Package reqmeta propagates request metadata (the request ID) between
// services. The gateway stamps X-Request-Id on every proxied call; downstream
// services attach it to their context so one browser action can be correlated
// across all four service logs.
package reqmeta

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// contextKey is an unexported type for context keys in this package.
// Using a custom type prevents collisions with keys from other packages
// that might use the same underlying string value.
type contextKey string

const (
	// HeaderXRequestID is the wire header carrying the request ID.
	HeaderXRequestID = "X-Request-Id"
	// HeaderIdempotencyKey is the wire header carrying the client-chosen
	// idempotency key for order creation.
	HeaderIdempotencyKey = "Idempotency-Key"

	contextKeyRequestID      contextKey = "request_id"
	contextKeyIdempotencyKey contextKey = "idempotency_key"
)

// Attach is an http middleware that resolves the request ID (incoming header
// first, chi's generated one as fallback) and the idempotency key, stores both
// in the context, and echoes the request ID back on the response.
func Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderXRequestID)
		if requestID == "" {
			requestID = middleware.GetReqID(r.Context())
		}
		idempotencyKey := r.Header.Get(HeaderIdempotencyKey)

		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		ctx = context.WithValue(ctx, contextKeyIdempotencyKey, idempotencyKey)

		w.Header().Set(HeaderXRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID returns the request ID stored in ctx, or "" if none is attached.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// IdempotencyKey returns the idempotency key stored in ctx, or "".
func IdempotencyKey(ctx context.Context) string {
	key, _ := ctx.Value(contextKeyIdempotencyKey).(string)
	return key
}

// Propagate copies the request ID from ctx onto an outgoing HTTP request.
func Propagate(ctx context.Context, req *http.Request) {
	if id := RequestID(ctx); id != "" {
		req.Header.Set(HeaderXRequestID, id)
	}
}

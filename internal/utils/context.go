// Package utils provides small helpers shared by the client packages:
// context keys, request body signing, the HTTP client, request identifiers
// and bearer token parsing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey stores the X-Request-ID of an outgoing request.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id. Requests sent with the
// returned context reuse id instead of generating a fresh one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext returns the request id stored by [WithRequestID].
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}

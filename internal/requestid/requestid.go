// Package requestid carries the inbound request identifier through
// context.Context so outbound calls can forward it.
package requestid

import "context"

// Header is the HTTP header used to exchange request identifiers.
const Header = "X-Request-ID"

type ctxKey struct{}

// With returns a copy of ctx carrying id.
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// From extracts the request identifier, or "" when none is set.
func From(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

package domain

import "context"

type CtxKey string

const KeyRequestID CtxKey = "RequestID"

// RequestIDFrom returns the request id stored by the HTTP layer, or "" for
// calls that did not come through it.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)
	return id
}

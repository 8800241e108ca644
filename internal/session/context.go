package session

import "context"

type ctxKey struct{}

type info struct {
	id    string
	fresh bool
}

// WithID stores the session id. fresh marks a session issued by this very
// request.
func WithID(ctx context.Context, id string, fresh bool) context.Context {
	return context.WithValue(ctx, ctxKey{}, info{id: id, fresh: fresh})
}

func IDFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKey{}).(info)
	if !ok || v.id == "" {
		return "", false
	}
	return v.id, true
}

func IsFresh(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKey{}).(info)
	return v.fresh
}

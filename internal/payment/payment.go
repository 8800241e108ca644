package payment

import "context"

// Gateway authorizes a payment. Implementations must stop waiting and return
// ctx.Err() once ctx is done.
type Gateway interface {
	Authorize(ctx context.Context, req Request) (*Result, error)
}

package server

import "context"

// activeContext pairs an in-flight request context with its cancel function
// so a cancelled notification can abort the matching operation.
type activeContext struct {
	context.Context
	context.CancelFunc
}

func newActiveContext(ctx context.Context, cancel context.CancelFunc) *activeContext {
	return &activeContext{Context: ctx, CancelFunc: cancel}
}

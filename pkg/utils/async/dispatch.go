package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Dispatch runs handler in a goroutine detached from ctx's cancellation,
// keeping only the logger. Errors and panics are logged. The returned
// channel receives the handler's result (a recovered panic becomes an
// error) and is then closed.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) <-chan error {
	newCtx := newBackgroundContext(ctx)
	done := make(chan error, 1)

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
				done <- goerr.New("panic in async handler", goerr.V("recover", r))
			}
		}()

		err := handler(newCtx)
		if err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
		done <- err
	}()

	return done
}

// newBackgroundContext creates a new background context preserving the logger
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}
	return newCtx
}

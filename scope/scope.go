package scope

import (
	"context"
	"errors"
)

// Resource is a value with an explicit acquire/release pair.
type Resource interface {
	// Enter acquires the resource. The body only runs if Enter succeeds.
	Enter() error
	// Exit releases the resource. It runs exactly once after the body,
	// even when the body panics.
	Exit()
}

// ContextResource is a Resource whose acquire and release take a context,
// for resources that block on I/O during setup or teardown.
type ContextResource interface {
	Enter(ctx context.Context) error
	Exit(ctx context.Context) error
}

// With runs fn between res.Enter and res.Exit.
// Enter failures are returned without running fn; Exit always runs once
// Enter succeeded.
func With[R Resource](res R, fn func(R) error) error {
	if err := res.Enter(); err != nil {
		return err
	}

	defer res.Exit()

	return fn(res)
}

// WithContext runs fn between res.Enter and res.Exit, threading the context
// through all three. The body's error and the Exit error are joined,
// so a teardown failure is never silently lost.
func WithContext[R ContextResource](ctx context.Context, res R, fn func(context.Context, R) error) (err error) {
	if enterErr := res.Enter(ctx); enterErr != nil {
		return enterErr
	}

	defer func() {
		err = errors.Join(err, res.Exit(ctx))
	}()

	return fn(ctx, res)
}

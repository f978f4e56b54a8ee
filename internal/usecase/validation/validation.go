// Package validation separates gathering facts from judging them.
//
// A context builder issues every read a command needs concurrently and joins
// them into an immutable context. A fixed chain of validators then inspects
// that context and returns the first failure. Validators never do I/O, so a
// command costs one round of queries no matter how many rules it has.
package validation

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Validator judges a built context. It must not perform I/O.
type Validator[C any] func(c C) error

// Run applies the chain in order and stops at the first failure.
func Run[C any](c C, chain []Validator[C]) error {
	for _, validate := range chain {
		if err := validate(c); err != nil {
			return err
		}
	}
	return nil
}

// fanOut runs reads concurrently and waits for all of them. The first error
// cancels the shared context and is the one returned.
func fanOut(ctx context.Context, reads ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, read := range reads {
		g.Go(func() error {
			return read(gctx)
		})
	}
	return g.Wait()
}

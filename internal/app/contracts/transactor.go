package contracts

import "context"

// Transactor runs fn as one unit of work. Repositories must pass the ctx they
// receive straight to the driver so their calls join the session.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

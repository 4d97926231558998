package domain

import "context"

// Transactor runs fn as one logical transaction. Repository calls made with the
// context passed to fn join the transaction; any error returned by fn discards
// every write made inside it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

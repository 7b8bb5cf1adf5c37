package repository

import "context"

// TxManager runs a function inside a single storage transaction. Repositories
// invoked with the context passed to fn participate in that transaction, so a
// cross-entity cascade (sale + debt + ledger entry) is applied all-or-nothing.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

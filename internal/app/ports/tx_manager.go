package ports

import "context"

// TxManager runs fn atomically against the backing store. Repositories
// called with the inner context join the same transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

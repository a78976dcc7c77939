package memory

import "context"

type txKeyType struct{}

var txKey = txKeyType{}

func inTx(ctx context.Context) bool {
	return ctx.Value(txKey) != nil
}

// TxManager serializes writers with the store's lock. There is no
// rollback: a failed step may leave earlier steps applied, which is
// acceptable for the dev and test profile this adapter serves.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(context.WithValue(ctx, txKey, struct{}{}))
}

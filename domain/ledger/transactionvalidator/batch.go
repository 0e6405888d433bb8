package transactionvalidator

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
	"github.com/utxogate/utxogate/domain/ledger/ruleerrors"
	"golang.org/x/sync/errgroup"
)

// ValidateTransactions validates every transaction in txs against the same
// view, on up to GOMAXPROCS goroutines. results[i] belongs to txs[i].
//
// The view must be safe for concurrent reads: utxopool.Snapshot and
// utxopool.StoreView are, utxopool.CachedView is not. Transactions are
// validated independently, so spending the same UTXO from two different
// transactions is not detected here.
//
// The first view or verifier failure, or the cancellation of ctx, stops the
// remaining validations and is returned.
func (v *TransactionValidator) ValidateTransactions(ctx context.Context,
	txs []*externalapi.Transaction) ([]*ruleerrors.ValidationResult, error) {

	results := make([]*ruleerrors.ValidationResult, len(txs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, tx := range txs {
		i, tx := i, tx
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			result, err := v.ValidateTransaction(tx)
			if err != nil {
				return errors.Wrapf(err, "failed to validate transaction %s", tx.ID)
			}
			results[i] = result
			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}
	return results, nil
}

package utxopool

import (
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
	"github.com/utxogate/utxogate/infrastructure/db/ldb"
)

// StoreView is a point-in-time view of a Store backed by a leveldb snapshot.
// It implements externalapi.UTXOView and is safe for concurrent use until
// released.
type StoreView struct {
	snapshot *ldb.LevelDBSnapshot
}

// GetUTXO returns the UTXO stored under (transactionID, outputIndex) when
// the view was taken.
func (v *StoreView) GetUTXO(transactionID string, outputIndex uint32) (*externalapi.UTXO, bool, error) {
	key, err := utxoKey(externalapi.UTXOID{TransactionID: transactionID, OutputIndex: outputIndex})
	if err != nil {
		return nil, false, err
	}
	value, err := v.snapshot.Get(key)
	if err != nil {
		return nil, false, err
	}
	if value == nil {
		return nil, false, nil
	}
	utxo, err := deserializeUTXO(value)
	if err != nil {
		return nil, false, err
	}
	return utxo, true, nil
}

// ForEach calls f for every UTXO in the view, in key order, until f returns
// an error.
func (v *StoreView) ForEach(f func(id externalapi.UTXOID, utxo *externalapi.UTXO) error) (err error) {
	cursor := v.snapshot.Cursor(utxoBucketPrefix)
	defer func() {
		closeErr := cursor.Close()
		if err == nil {
			err = closeErr
		}
	}()

	for cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			return err
		}
		id, err := utxoIDFromKey(key)
		if err != nil {
			return err
		}
		value, err := cursor.Value()
		if err != nil {
			return err
		}
		utxo, err := deserializeUTXO(value)
		if err != nil {
			return err
		}
		err = f(id, utxo)
		if err != nil {
			return err
		}
	}
	return nil
}

// ToSnapshot copies the view into an in-memory Snapshot.
func (v *StoreView) ToSnapshot() (*Snapshot, error) {
	var pairs []*externalapi.UTXOIDAndUTXOPair
	err := v.ForEach(func(id externalapi.UTXOID, utxo *externalapi.UTXO) error {
		pairs = append(pairs, &externalapi.UTXOIDAndUTXOPair{UTXOID: id, UTXO: utxo})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewSnapshot(pairs)
}

// Commitment returns the MuHash commitment of the view's content.
func (v *StoreView) Commitment() (Commitment, error) {
	builder := newCommitmentBuilder()
	err := v.ForEach(builder.add)
	if err != nil {
		return Commitment{}, err
	}
	return builder.finalize(), nil
}

// Release releases the underlying leveldb snapshot.
func (v *StoreView) Release() {
	v.snapshot.Release()
}

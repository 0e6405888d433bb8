package utxopool

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/utxogate/utxogate/domain/ledger/model/externalapi"
	"github.com/utxogate/utxogate/infrastructure/db/ldb"
)

// Store is a UTXO pool persisted in leveldb. Writes are serialized by the
// store; reads for validation go through point-in-time views obtained with
// View, so concurrent writes never show up half way through a validation.
type Store struct {
	db        *ldb.LevelDB
	writeLock sync.Mutex
}

// New returns a Store over db.
func New(db *ldb.LevelDB) *Store {
	return &Store{db: db}
}

// Open opens, or creates, the leveldb database at path and returns a Store
// over it. Close releases the database.
func Open(path string) (*Store, error) {
	db, err := ldb.NewLevelDB(path)
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// View returns a read-only view of the pool as of now. The view must be
// released with Release.
func (s *Store) View() (*StoreView, error) {
	snapshot, err := s.db.Snapshot()
	if err != nil {
		return nil, err
	}
	return &StoreView{snapshot: snapshot}, nil
}

// Snapshot copies the whole pool into an in-memory Snapshot.
func (s *Store) Snapshot() (*Snapshot, error) {
	view, err := s.View()
	if err != nil {
		return nil, err
	}
	defer view.Release()
	return view.ToSnapshot()
}

// Insert adds utxo under id. Inserting over an existing UTXO is an error,
// since an output can only be created once.
func (s *Store) Insert(id externalapi.UTXOID, utxo *externalapi.UTXO) error {
	return s.InsertMany([]*externalapi.UTXOIDAndUTXOPair{{UTXOID: id, UTXO: utxo}})
}

// InsertMany atomically adds all pairs. Nothing is written if any of them
// already exists or appears twice.
func (s *Store) InsertMany(pairs []*externalapi.UTXOIDAndUTXOPair) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	batch := ldb.NewBatch()
	seen := make(map[externalapi.UTXOID]struct{}, len(pairs))
	for _, pair := range pairs {
		if _, ok := seen[pair.UTXOID]; ok {
			return errors.Errorf("UTXO %s appears more than once", pair.UTXOID)
		}
		seen[pair.UTXOID] = struct{}{}

		err := s.putToBatch(batch, pair.UTXOID, pair.UTXO)
		if err != nil {
			return err
		}
	}

	err := s.db.Write(batch)
	if err != nil {
		return err
	}
	log.Debugf("Inserted %d UTXOs", len(pairs))
	return nil
}

// Remove deletes the UTXO stored under id. Removing a missing UTXO is an
// error.
func (s *Store) Remove(id externalapi.UTXOID) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	batch := ldb.NewBatch()
	err := s.deleteToBatch(batch, id)
	if err != nil {
		return err
	}
	return s.db.Write(batch)
}

// ApplyTransaction atomically spends tx's inputs and adds its outputs as
// (tx.ID, index) UTXOs. It checks only that the inputs exist and the new
// outputs don't; the transaction must have been validated beforehand.
func (s *Store) ApplyTransaction(tx *externalapi.Transaction) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	batch := ldb.NewBatch()
	spent := make(map[externalapi.UTXOID]struct{}, len(tx.Inputs))
	for _, input := range tx.Inputs {
		if _, ok := spent[input.UTXOID]; ok {
			return errors.Errorf("transaction %s spends UTXO %s more than once", tx.ID, input.UTXOID)
		}
		spent[input.UTXOID] = struct{}{}

		err := s.deleteToBatch(batch, input.UTXOID)
		if err != nil {
			return errors.Wrapf(err, "cannot apply transaction %s", tx.ID)
		}
	}

	for i, output := range tx.Outputs {
		id := externalapi.UTXOID{TransactionID: tx.ID, OutputIndex: uint32(i)}
		utxo := &externalapi.UTXO{Recipient: output.Recipient, Amount: output.Amount}
		err := s.putToBatch(batch, id, utxo)
		if err != nil {
			return errors.Wrapf(err, "cannot apply transaction %s", tx.ID)
		}
	}

	err := s.db.Write(batch)
	if err != nil {
		return err
	}
	log.Debugf("Applied transaction %s: spent %d UTXOs, created %d",
		tx.ID, len(tx.Inputs), len(tx.Outputs))
	return nil
}

func (s *Store) putToBatch(batch *ldb.Batch, id externalapi.UTXOID, utxo *externalapi.UTXO) error {
	if utxo == nil {
		return errors.Errorf("UTXO %s is nil", id)
	}
	key, err := utxoKey(id)
	if err != nil {
		return err
	}
	exists, err := s.db.Has(key)
	if err != nil {
		return err
	}
	if exists {
		return errors.Errorf("UTXO %s already exists", id)
	}
	value, err := serializeUTXO(utxo)
	if err != nil {
		return err
	}
	batch.Put(key, value)
	return nil
}

func (s *Store) deleteToBatch(batch *ldb.Batch, id externalapi.UTXOID) error {
	key, err := utxoKey(id)
	if err != nil {
		return err
	}
	exists, err := s.db.Has(key)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Errorf("UTXO %s does not exist", id)
	}
	batch.Delete(key)
	return nil
}

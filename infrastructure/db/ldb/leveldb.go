package ldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldbErrors "github.com/syndtr/goleveldb/leveldb/errors"
)

// LevelDB defines a thin wrapper around leveldb.
type LevelDB struct {
	ldb *leveldb.DB
}

// NewLevelDB opens a leveldb instance defined by the given path, creating it
// if needed.
func NewLevelDB(path string) (*LevelDB, error) {
	ldb, err := leveldb.OpenFile(path, Options())

	if ldbErrors.IsCorrupted(err) {
		log.Warnf("LevelDB corruption detected for path %s: %s",
			path, err)
		var recoverErr error
		ldb, recoverErr = leveldb.RecoverFile(path, Options())
		if recoverErr != nil {
			return nil, errors.Wrapf(recoverErr, "failed recovering leveldb at %s", path)
		}
		log.Warnf("LevelDB recovered from corruption for path %s",
			path)
		err = nil
	}

	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &LevelDB{ldb: ldb}, nil
}

// Close closes the leveldb instance.
func (db *LevelDB) Close() error {
	return errors.WithStack(db.ldb.Close())
}

// Put sets the value for the given key. It overwrites
// any previous value for that key.
func (db *LevelDB) Put(key []byte, value []byte) error {
	return errors.WithStack(db.ldb.Put(key, value, nil))
}

// Get gets the value for the given key. It returns nil if
// the given key does not exist.
func (db *LevelDB) Get(key []byte) ([]byte, error) {
	data, err := db.ldb.Get(key, nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// Has returns true if the database does contains the
// given key.
func (db *LevelDB) Has(key []byte) (bool, error) {
	has, err := db.ldb.Has(key, nil)
	return has, errors.WithStack(err)
}

// Delete deletes the value for the given key. Deleting a
// missing key is not an error.
func (db *LevelDB) Delete(key []byte) error {
	return errors.WithStack(db.ldb.Delete(key, nil))
}

// Write atomically applies every operation in the batch.
func (db *LevelDB) Write(batch *Batch) error {
	return errors.WithStack(db.ldb.Write(batch.batch, nil))
}

// Snapshot returns a read-only point-in-time view of the database. The
// snapshot must be released once it's no longer used.
func (db *LevelDB) Snapshot() (*LevelDBSnapshot, error) {
	snapshot, err := db.ldb.GetSnapshot()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &LevelDBSnapshot{snapshot: snapshot}, nil
}

// Cursor iterates over every key in the database that starts with prefix.
func (db *LevelDB) Cursor(prefix []byte) *LevelDBCursor {
	return newCursor(db.ldb.NewIterator(bytesPrefix(prefix), nil))
}

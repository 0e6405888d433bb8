package ldb

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDBSnapshot is a read-only point-in-time view of a LevelDB. Writes to
// the database after the snapshot was taken are not visible through it.
// It's safe for concurrent use.
type LevelDBSnapshot struct {
	snapshot   *leveldb.Snapshot
	isReleased uint32
}

// Get gets the value for the given key. It returns nil if
// the given key does not exist.
func (s *LevelDBSnapshot) Get(key []byte) ([]byte, error) {
	data, err := s.snapshot.Get(key, nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// Has returns true if the snapshot contains the given key.
func (s *LevelDBSnapshot) Has(key []byte) (bool, error) {
	has, err := s.snapshot.Has(key, nil)
	return has, errors.WithStack(err)
}

// Cursor iterates over every key in the snapshot that starts with prefix.
func (s *LevelDBSnapshot) Cursor(prefix []byte) *LevelDBCursor {
	return newCursor(s.snapshot.NewIterator(bytesPrefix(prefix), nil))
}

// Release releases the snapshot. Calling it more than once is a no-op.
func (s *LevelDBSnapshot) Release() {
	if !atomic.CompareAndSwapUint32(&s.isReleased, 0, 1) {
		return
	}
	s.snapshot.Release()
}
